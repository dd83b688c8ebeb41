// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/wordstat"
)

// WordStat is the model entity for the WordStat schema.
type WordStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WordID holds the value of the "word_id" field.
	WordID string `json:"word_id,omitempty"`
	// Learning status: new, learning, or mastered
	Status string `json:"status,omitempty"`
	// ViewCount holds the value of the "view_count" field.
	ViewCount int `json:"view_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// LastViewed holds the value of the "last_viewed" field.
	LastViewed   *time.Time `json:"last_viewed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WordStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wordstat.FieldID, wordstat.FieldViewCount, wordstat.FieldCorrectCount, wordstat.FieldIncorrectCount:
			values[i] = new(sql.NullInt64)
		case wordstat.FieldWordID, wordstat.FieldStatus:
			values[i] = new(sql.NullString)
		case wordstat.FieldLastViewed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WordStat fields.
func (ws *WordStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wordstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ws.ID = int(value.Int64)
		case wordstat.FieldWordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_id", values[i])
			} else if value.Valid {
				ws.WordID = value.String
			}
		case wordstat.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ws.Status = value.String
			}
		case wordstat.FieldViewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field view_count", values[i])
			} else if value.Valid {
				ws.ViewCount = int(value.Int64)
			}
		case wordstat.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				ws.CorrectCount = int(value.Int64)
			}
		case wordstat.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				ws.IncorrectCount = int(value.Int64)
			}
		case wordstat.FieldLastViewed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_viewed", values[i])
			} else if value.Valid {
				ws.LastViewed = new(time.Time)
				*ws.LastViewed = value.Time
			}
		default:
			ws.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WordStat.
// This includes values selected through modifiers, order, etc.
func (ws *WordStat) Value(name string) (ent.Value, error) {
	return ws.selectValues.Get(name)
}

// Update returns a builder for updating this WordStat.
// Note that you need to call WordStat.Unwrap() before calling this method if this WordStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (ws *WordStat) Update() *WordStatUpdateOne {
	return NewWordStatClient(ws.config).UpdateOne(ws)
}

// Unwrap unwraps the WordStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ws *WordStat) Unwrap() *WordStat {
	_tx, ok := ws.config.driver.(*txDriver)
	if !ok {
		panic("ent: WordStat is not a transactional entity")
	}
	ws.config.driver = _tx.drv
	return ws
}

// String implements the fmt.Stringer.
func (ws *WordStat) String() string {
	var builder strings.Builder
	builder.WriteString("WordStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ws.ID))
	builder.WriteString("word_id=")
	builder.WriteString(ws.WordID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ws.Status)
	builder.WriteString(", ")
	builder.WriteString("view_count=")
	builder.WriteString(fmt.Sprintf("%v", ws.ViewCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", ws.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", ws.IncorrectCount))
	builder.WriteString(", ")
	if v := ws.LastViewed; v != nil {
		builder.WriteString("last_viewed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WordStats is a parsable slice of WordStat.
type WordStats []*WordStat
