// Package search keeps an Elasticsearch index of todos in sync with
// the primary store and serves title search. Indexing is best-effort:
// a down cluster must never fail a write to Postgres.
package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/yogawp/todolist-api/internal/domain/entity"
)

type TodoIndex struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewTodoIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *TodoIndex {
	return &TodoIndex{ES: es, Index: index, Logger: logger}
}

func (i *TodoIndex) enabled() bool {
	return i != nil && i.ES != nil && i.Index != ""
}

func (i *TodoIndex) IndexTodo(ctx context.Context, t *entity.Todo) error {
	if !i.enabled() {
		return nil
	}
	doc := map[string]any{
		"id":         t.ID,
		"title":      t.Title,
		"completed":  t.Completed,
		"user_id":    t.UserID,
		"created_at": t.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": t.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: i.Index, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		if i.Logger != nil {
			i.Logger.WithError(err).WithField("todo_id", t.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && i.Logger != nil {
		i.Logger.WithField("status", res.Status()).WithField("todo_id", t.ID).Warn("es index response error")
	}
	return nil
}

func (i *TodoIndex) DeleteTodo(ctx context.Context, id string) error {
	if !i.enabled() {
		return nil
	}
	req := esapi.DeleteRequest{Index: i.Index, DocumentID: id}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		if i.Logger != nil {
			i.Logger.WithError(err).WithField("todo_id", id).Warn("es delete failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	return nil
}

// Search runs a match query over todo titles.
func (i *TodoIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !i.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"title": q,
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := i.ES.Search(
		i.ES.Search.WithContext(c),
		i.ES.Search.WithIndex(i.Index),
		i.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
