package handler

import (
	"encoding/json"

	"github.com/arkanhaq/contenthub/internal/validation"
)

// Content payloads are open JSON objects judged by the entity mappings,
// not fixed structs, so the body-carrying request types capture the raw
// object through a custom UnmarshalJSON and leave field checks to the
// repository layer. Path parameters still validate through tags.

type emptyRequest struct{}

func (r *emptyRequest) Validate() error { return nil }

type idRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *idRequest) Validate() error { return validation.Struct(r) }

type slugRequest struct {
	Slug string `param:"slug" validate:"required"`
}

func (r *slugRequest) Validate() error { return validation.Struct(r) }

type userIDRequest struct {
	UserID int64 `param:"userId" validate:"required,min=1"`
}

func (r *userIDRequest) Validate() error { return validation.Struct(r) }

type commentIDRequest struct {
	CommentID int64 `param:"commentId" validate:"required,min=1"`
}

func (r *commentIDRequest) Validate() error { return validation.Struct(r) }

type pageKeyRequest struct {
	Key string `param:"key" validate:"required"`
}

func (r *pageKeyRequest) Validate() error { return validation.Struct(r) }

// createRequest carries an arbitrary JSON object body.
type createRequest struct {
	Fields map[string]any `json:"-"`
}

func (r *createRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

func (r *createRequest) Validate() error { return nil }

// updateRequest carries an id path parameter plus an arbitrary JSON
// object body.
type updateRequest struct {
	ID     int64          `param:"id" json:"-" validate:"required,min=1"`
	Fields map[string]any `json:"-"`
}

func (r *updateRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

func (r *updateRequest) Validate() error { return validation.Struct(r) }

// pageKeyPayloadRequest carries a page key path parameter plus an
// arbitrary JSON object body.
type pageKeyPayloadRequest struct {
	Key    string         `param:"key" json:"-" validate:"required"`
	Fields map[string]any `json:"-"`
}

func (r *pageKeyPayloadRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

func (r *pageKeyPayloadRequest) Validate() error { return validation.Struct(r) }

// entriesRequest carries a JSON array body of content objects.
type entriesRequest struct {
	Entries []map[string]any `json:"-"`
}

func (r *entriesRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Entries)
}

func (r *entriesRequest) Validate() error { return nil }
