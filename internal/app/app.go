// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"schema-typegen/internal/common/config"
	apperrors "schema-typegen/internal/common/errors"
	httpclient "schema-typegen/internal/common/http"
	"schema-typegen/internal/common/logger"
	"schema-typegen/internal/common/validation"
	"schema-typegen/internal/typegen"
	"schema-typegen/pkg/profile"
)

// App drives the fetch/validate/generate pipeline for a single run.
type App struct {
	cfg      *config.Config
	log      logger.Logger
	client   *httpclient.Client
	compiler typegen.Compiler
	out      io.Writer
}

func New(cfg *config.Config, log logger.Logger, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		log:    log.WithFields(map[string]interface{}{"runId": uuid.NewString()}),
		client: httpclient.NewClient(cfg.RequestTimeout()),
		compiler: typegen.NewGoCompiler(typegen.Options{
			DefaultName:                  cfg.Output.DefaultName,
			DisallowAdditionalProperties: !cfg.Output.AllowAdditionalProperties,
		}),
		out: out,
	}
}

// Run executes the whole pipeline against the given base URL. Every failure
// is terminal; there are no retries and no partial results.
func (a *App) Run(ctx context.Context, baseURL string) error {
	doc, err := a.fetchProfile(ctx, baseURL)
	if err != nil {
		return err
	}

	links := doc.FollowLinks()
	a.log.Info("profile fetched", map[string]interface{}{
		"links": len(links),
	})

	docs, err := a.fetchSchemas(ctx, links)
	if err != nil {
		return err
	}

	results, err := typegen.CompileAll(ctx, a.compiler, docs, a.log)
	if err != nil {
		return apperrors.NewCompileFailedError("schemas", err)
	}

	return a.printResults(results)
}

// fetchProfile GETs {base}/profile and validates the profile document shape.
func (a *App) fetchProfile(ctx context.Context, baseURL string) (*profile.Document, error) {
	profileURL := strings.TrimSuffix(baseURL, "/") + "/profile"

	body, err := a.client.GetJSON(ctx, profileURL, "")
	if err != nil {
		if errors.Is(err, httpclient.ErrUnexpectedStatus) {
			return nil, apperrors.NewRequestFailedError(err)
		}
		return nil, err
	}

	if res := validation.CheckProfileDocument(body); !res.Valid {
		a.log.Debug("profile document rejected", map[string]interface{}{
			"url":    profileURL,
			"errors": res.Errors,
		})
		return nil, apperrors.NewSchemaError(fmt.Errorf("profile document at %s", profileURL))
	}

	return profile.FromDecoded(body), nil
}

// fetchSchemas GETs every link concurrently with the schema+json Accept
// header and validates each body. Relations are processed in sorted name
// order so the result order, and therefore the first printed document, is
// stable. The batch is all-or-nothing: one failure fails the run, in-flight
// siblings finish and their results are discarded.
func (a *App) fetchSchemas(ctx context.Context, links map[string]profile.Link) ([]profile.SchemaDocument, error) {
	rels := make([]string, 0, len(links))
	for rel := range links {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	bodies := make([]interface{}, len(rels))
	errs := make([]error, len(rels))

	var wg sync.WaitGroup
	for i, rel := range rels {
		wg.Add(1)
		go func(i int, href string) {
			defer wg.Done()
			bodies[i], errs[i] = a.client.GetJSON(ctx, href, httpclient.SchemaContentType)
		}(i, links[rel].Href)
	}
	wg.Wait()

	// Transport errors abort with the raw error; status errors come next and
	// fail the batch without naming the request; decode errors rank last
	// because decoding only happens once every response has a good status.
	var statusErr, decodeErr error
	for _, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, httpclient.ErrUnexpectedStatus):
			statusErr = err
		case errors.Is(err, httpclient.ErrDecode):
			decodeErr = err
		default:
			return nil, err
		}
	}
	if statusErr != nil {
		return nil, apperrors.NewBatchFailedError(statusErr)
	}
	if decodeErr != nil {
		return nil, decodeErr
	}

	docs := make([]profile.SchemaDocument, len(rels))
	for i, body := range bodies {
		if res := validation.CheckSchemaDocument(body); !res.Valid {
			a.log.Debug("schema document rejected", map[string]interface{}{
				"relation": rels[i],
				"errors":   res.Errors,
			})
			return nil, apperrors.NewSchemaError(fmt.Errorf("schema document for relation %q", rels[i]))
		}
		docs[i] = profile.SchemaDocument(body.(map[string]interface{}))
	}

	return docs, nil
}

// printResults writes compiled output to the output stream. By default only
// the first result is printed; print_all emits every document.
func (a *App) printResults(results []string) error {
	if len(results) == 0 {
		return nil
	}
	if !a.cfg.Output.PrintAll {
		results = results[:1]
	}
	_, err := fmt.Fprintln(a.out, strings.TrimRight(strings.Join(results, "\n"), "\n"))
	return err
}
