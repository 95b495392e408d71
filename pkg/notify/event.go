package notify

import (
	"seoaudit/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Tables whose rows publish change events.
const (
	TableJobs      = "jobs"
	TableCrawlJobs = "crawl_jobs"
)

// Event is a row change. Total is total_items for jobs and 100 for crawls, so
// that Progress/Total is the completion ratio for both.
type Event struct {
	Table        string
	ID           string
	Status       string
	Progress     int
	Total        int
	ErrorMessage string
	At           time.Time
}

// JobEvent builds the change event of a job row.
func JobEvent(j domain.Job) Event {
	return Event{
		Table:        TableJobs,
		ID:           j.ID.String(),
		Status:       string(j.Status),
		Progress:     j.Progress,
		Total:        j.TotalItems,
		ErrorMessage: j.ErrorMessage,
		At:           time.Now().UTC(),
	}
}

// CrawlEvent builds the change event of a crawl row.
func CrawlEvent(c domain.CrawlJob) Event {
	return Event{
		Table:        TableCrawlJobs,
		ID:           c.ID.String(),
		Status:       string(c.Status),
		Progress:     c.Progress,
		Total:        100,
		ErrorMessage: c.ErrorMessage,
		At:           time.Now().UTC(),
	}
}

// Encode writes the event as a JSON object.
func (e Event) Encode(enc *jx.Encoder) {
	enc.ObjStart()
	enc.FieldStart("table")
	enc.Str(e.Table)
	enc.FieldStart("id")
	enc.Str(e.ID)
	enc.FieldStart("status")
	enc.Str(e.Status)
	enc.FieldStart("progress")
	enc.Int(e.Progress)
	enc.FieldStart("total")
	enc.Int(e.Total)
	if e.ErrorMessage != "" {
		enc.FieldStart("error_message")
		enc.Str(e.ErrorMessage)
	}
	enc.FieldStart("at")
	enc.Str(e.At.Format(time.RFC3339Nano))
	enc.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	var enc jx.Encoder
	e.Encode(&enc)

	return enc.Bytes(), nil
}

// Decode reads an event written by Encode. Unknown fields are skipped.
func (e *Event) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "table":
			e.Table, err = d.Str()
		case "id":
			e.ID, err = d.Str()
		case "status":
			e.Status, err = d.Str()
		case "progress":
			e.Progress, err = d.Int()
		case "total":
			e.Total, err = d.Int()
		case "error_message":
			e.ErrorMessage, err = d.Str()
		case "at":
			var at string
			if at, err = d.Str(); err == nil {
				e.At, err = time.Parse(time.RFC3339Nano, at)
			}
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}

		return nil
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(b []byte) error {
	return e.Decode(jx.DecodeBytes(b))
}
