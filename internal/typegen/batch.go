// internal/typegen/batch.go
package typegen

import (
	"context"
	"sync"

	"schema-typegen/internal/common/logger"
	"schema-typegen/pkg/profile"
)

// CompileAll compiles every document concurrently and joins on full
// completion. Results keep the input order. Any compile error fails the whole
// batch; in-flight siblings are not cancelled, their results are discarded
// after the join.
func CompileAll(ctx context.Context, c Compiler, docs []profile.SchemaDocument, log logger.Logger) ([]string, error) {
	results := make([]string, len(docs))
	errChan := make(chan error, len(docs))

	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc profile.SchemaDocument) {
			defer wg.Done()
			out, err := c.Compile(ctx, doc, "")
			if err != nil {
				log.Debug("compile failed", map[string]interface{}{
					"title": doc.Title(),
					"error": err.Error(),
				})
				errChan <- err
				return
			}
			results[i] = out
		}(i, doc)
	}
	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}
	return results, nil
}
