// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/viewevent"
)

// ViewEvent is the model entity for the ViewEvent schema.
type ViewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// WordID holds the value of the "word_id" field.
	WordID       string `json:"word_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ViewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case viewevent.FieldID, viewevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case viewevent.FieldWordID:
			values[i] = new(sql.NullString)
		case viewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ViewEvent fields.
func (ve *ViewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case viewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ve.ID = int(value.Int64)
		case viewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ve.Sequence = value.Int64
			}
		case viewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ve.Timestamp = value.Time
			}
		case viewevent.FieldWordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_id", values[i])
			} else if value.Valid {
				ve.WordID = value.String
			}
		default:
			ve.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ViewEvent.
// This includes values selected through modifiers, order, etc.
func (ve *ViewEvent) Value(name string) (ent.Value, error) {
	return ve.selectValues.Get(name)
}

// Update returns a builder for updating this ViewEvent.
// Note that you need to call ViewEvent.Unwrap() before calling this method if this ViewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ve *ViewEvent) Update() *ViewEventUpdateOne {
	return NewViewEventClient(ve.config).UpdateOne(ve)
}

// Unwrap unwraps the ViewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ve *ViewEvent) Unwrap() *ViewEvent {
	_tx, ok := ve.config.driver.(*txDriver)
	if !ok {
		panic("ent: ViewEvent is not a transactional entity")
	}
	ve.config.driver = _tx.drv
	return ve
}

// String implements the fmt.Stringer.
func (ve *ViewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ViewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ve.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ve.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ve.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("word_id=")
	builder.WriteString(ve.WordID)
	builder.WriteByte(')')
	return builder.String()
}

// ViewEvents is a parsable slice of ViewEvent.
type ViewEvents []*ViewEvent
