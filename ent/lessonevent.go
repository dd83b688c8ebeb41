// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/lessonevent"
)

// LessonEvent is the model entity for the LessonEvent schema.
type LessonEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// FirstCompletion holds the value of the "first_completion" field.
	FirstCompletion bool `json:"first_completion,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonevent.FieldFirstCompletion:
			values[i] = new(sql.NullBool)
		case lessonevent.FieldID, lessonevent.FieldSequence, lessonevent.FieldScore:
			values[i] = new(sql.NullInt64)
		case lessonevent.FieldCategoryID, lessonevent.FieldLessonID, lessonevent.FieldIdempotencyKey:
			values[i] = new(sql.NullString)
		case lessonevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonEvent fields.
func (le *LessonEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			le.ID = int(value.Int64)
		case lessonevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				le.Sequence = value.Int64
			}
		case lessonevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				le.Timestamp = value.Time
			}
		case lessonevent.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				le.CategoryID = value.String
			}
		case lessonevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				le.LessonID = value.String
			}
		case lessonevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				le.Score = int(value.Int64)
			}
		case lessonevent.FieldFirstCompletion:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field first_completion", values[i])
			} else if value.Valid {
				le.FirstCompletion = value.Bool
			}
		case lessonevent.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				le.IdempotencyKey = value.String
			}
		default:
			le.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonEvent.
// This includes values selected through modifiers, order, etc.
func (le *LessonEvent) Value(name string) (ent.Value, error) {
	return le.selectValues.Get(name)
}

// Update returns a builder for updating this LessonEvent.
// Note that you need to call LessonEvent.Unwrap() before calling this method if this LessonEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (le *LessonEvent) Update() *LessonEventUpdateOne {
	return NewLessonEventClient(le.config).UpdateOne(le)
}

// Unwrap unwraps the LessonEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (le *LessonEvent) Unwrap() *LessonEvent {
	_tx, ok := le.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonEvent is not a transactional entity")
	}
	le.config.driver = _tx.drv
	return le
}

// String implements the fmt.Stringer.
func (le *LessonEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", le.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", le.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(le.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(le.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(le.LessonID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", le.Score))
	builder.WriteString(", ")
	builder.WriteString("first_completion=")
	builder.WriteString(fmt.Sprintf("%v", le.FirstCompletion))
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(le.IdempotencyKey)
	builder.WriteByte(')')
	return builder.String()
}

// LessonEvents is a parsable slice of LessonEvent.
type LessonEvents []*LessonEvent
