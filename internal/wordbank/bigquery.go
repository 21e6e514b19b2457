package wordbank

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQuerySource reads words from a table with `word` and `scope` columns.
type BigQuerySource struct {
	client   *bigquery.Client
	table    string
	location string
}

// NewBigQuerySource wraps an existing client. table is a fully qualified
// `project.dataset.table` name.
func NewBigQuerySource(client *bigquery.Client, table, location string) *BigQuerySource {
	return &BigQuerySource{client: client, table: table, location: location}
}

func (s *BigQuerySource) query(scope string) *bigquery.Query {
	q := s.client.Query(fmt.Sprintf("SELECT word FROM `%s` WHERE scope = @scope", s.table))
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: scope}}
	if s.location != "" {
		q.Location = s.location
	}
	return q
}

func (s *BigQuerySource) Words(ctx context.Context, scope string) ([]string, error) {
	job, err := s.query(scope).Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return Normalize(words), nil
}
