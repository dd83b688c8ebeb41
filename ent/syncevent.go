// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/syncevent"
)

// SyncEvent is the model entity for the SyncEvent schema.
type SyncEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// push or pull
	Direction string `json:"direction,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case syncevent.FieldID, syncevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case syncevent.FieldDirection, syncevent.FieldEndpoint, syncevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case syncevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncEvent fields.
func (se *SyncEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			se.ID = int(value.Int64)
		case syncevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				se.Sequence = value.Int64
			}
		case syncevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				se.Timestamp = value.Time
			}
		case syncevent.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				se.Direction = value.String
			}
		case syncevent.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				se.Endpoint = value.String
			}
		case syncevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				se.Success = value.Bool
			}
		case syncevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				se.ErrorMessage = value.String
			}
		default:
			se.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncEvent.
// This includes values selected through modifiers, order, etc.
func (se *SyncEvent) Value(name string) (ent.Value, error) {
	return se.selectValues.Get(name)
}

// Update returns a builder for updating this SyncEvent.
// Note that you need to call SyncEvent.Unwrap() before calling this method if this SyncEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (se *SyncEvent) Update() *SyncEventUpdateOne {
	return NewSyncEventClient(se.config).UpdateOne(se)
}

// Unwrap unwraps the SyncEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (se *SyncEvent) Unwrap() *SyncEvent {
	_tx, ok := se.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncEvent is not a transactional entity")
	}
	se.config.driver = _tx.drv
	return se
}

// String implements the fmt.Stringer.
func (se *SyncEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SyncEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", se.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", se.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(se.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(se.Direction)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(se.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", se.Success))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(se.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// SyncEvents is a parsable slice of SyncEvent.
type SyncEvents []*SyncEvent
