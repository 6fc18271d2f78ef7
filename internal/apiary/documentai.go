// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apiary

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/googleapis/apiary/documentai/v1beta2"
	"github.com/googleapis/apiary/internal/output"
	"github.com/googleapis/gax-go/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const gcsScheme = "gs://"

func (a *app) documentAICommand() *cli.Command {
	return &cli.Command{
		Name:      "documentai",
		Usage:     "process documents with Document AI",
		UsageText: "apiary documentai <command> [arguments]",
		Commands: []*cli.Command{
			a.processCommand(),
			a.batchProcessCommand(),
			{
				Name:  "operations",
				Usage: "inspect long-running operations",
				Commands: []*cli.Command{
					a.operationsGetCommand(),
					a.operationsWaitCommand(),
				},
			},
		},
	}
}

func (a *app) documentAI(cmd *cli.Command) (*documentai.Service, error) {
	if err := a.load(cmd); err != nil {
		return nil, err
	}
	s, err := documentai.NewWithAuthenticator(a.httpClient, a.auth)
	if err != nil {
		return nil, err
	}
	if e := endpoint(cmd, a.cfg.Services.DocumentAI.Endpoint); e != "" {
		s.SetBasePath(e)
	}
	s.SetUserAgent(a.cfg.UserAgent)
	return s, nil
}

// parent returns the --parent flag or the configured parent.
func (a *app) parent(cmd *cli.Command) (string, error) {
	p := cmd.String("parent")
	if p == "" {
		p = a.cfg.Services.DocumentAI.Parent
	}
	if p == "" {
		return "", fmt.Errorf("%w: --parent is required when no parent is configured", errMissingArgs)
	}
	return p, nil
}

// isLocation reports whether parent names a location rather than a project.
func isLocation(parent string) bool {
	return strings.Contains(parent, "/locations/")
}

// inputConfig describes the document at path. Cloud Storage URIs are passed
// by reference; local files are sent inline.
func inputConfig(path, mimeType string) (*documentai.GoogleCloudDocumentaiV1beta2InputConfig, error) {
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(path))
		if i := strings.IndexByte(mimeType, ';'); i >= 0 {
			mimeType = mimeType[:i]
		}
	}
	if mimeType == "" {
		return nil, fmt.Errorf("cannot guess the mime type of %q, use --mime-type", path)
	}
	in := &documentai.GoogleCloudDocumentaiV1beta2InputConfig{MimeType: mimeType}
	if strings.HasPrefix(path, gcsScheme) {
		in.GcsSource = &documentai.GoogleCloudDocumentaiV1beta2GcsSource{Uri: path}
		return in, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	in.Contents = base64.StdEncoding.EncodeToString(data)
	return in, nil
}

func (a *app) processCommand() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "process documents synchronously and print the results",
		UsageText: `apiary documentai process [--parent PARENT] <file>... [--mime-type TYPE] [--document-type TYPE] [--parallel N]

Each file is a local path or a gs:// URI. Results are printed in the order
the files are given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "parent",
				Usage: "process in `PARENT`, projects/P or projects/P/locations/L",
			},
			&cli.StringFlag{
				Name:  "mime-type",
				Usage: "the mime `TYPE` of every input, guessed from the file extension by default",
			},
			&cli.StringFlag{
				Name:  "document-type",
				Usage: "the document `TYPE`, for example invoice",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Value: 4,
				Usage: "process at most `N` documents at once",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("%w: usage: apiary documentai process <file>...", errMissingArgs)
			}
			s, err := a.documentAI(cmd)
			if err != nil {
				return err
			}
			parent, err := a.parent(cmd)
			if err != nil {
				return err
			}
			files := cmd.Args().Slice()
			docs := make([]*documentai.GoogleCloudDocumentaiV1beta2Document, len(files))
			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(max(cmd.Int("parallel"), 1))
			for i, file := range files {
				g.Go(func() error {
					in, err := inputConfig(file, cmd.String("mime-type"))
					if err != nil {
						return err
					}
					req := &documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest{
						DocumentType: cmd.String("document-type"),
						InputConfig:  in,
					}
					doc, err := a.process(ctx, cmd, s, parent, req)
					if err != nil {
						return fmt.Errorf("processing %s: %w", file, err)
					}
					docs[i] = doc
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, doc := range docs {
				if err := a.printer.Print(doc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) process(ctx context.Context, cmd *cli.Command, s *documentai.Service, parent string, req *documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest) (*documentai.GoogleCloudDocumentaiV1beta2Document, error) {
	f := fields(cmd)
	if isLocation(parent) {
		call := s.Projects.Locations.Documents.Process(parent, req).Context(ctx).Delegate(a.delegate())
		if f != "" {
			call.Fields(f)
		}
		return call.Do()
	}
	call := s.Projects.Documents.Process(parent, req).Context(ctx).Delegate(a.delegate())
	if f != "" {
		call.Fields(f)
	}
	return call.Do()
}

func (a *app) batchProcessCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch-process",
		Usage:     "start asynchronous processing of documents in Cloud Storage",
		UsageText: "apiary documentai batch-process [--parent PARENT] --input gs://... --output gs://... [--mime-type TYPE] [--pages-per-shard N]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "parent",
				Usage: "process in `PARENT`, projects/P or projects/P/locations/L",
			},
			&cli.StringSliceFlag{
				Name:     "input",
				Usage:    "a gs:// `URI` to process, may be repeated",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "write results below the gs:// `PREFIX`",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mime-type",
				Usage: "the mime `TYPE` of every input, guessed from the file extension by default",
			},
			&cli.StringFlag{
				Name:  "document-type",
				Usage: "the document `TYPE`, for example invoice",
			},
			&cli.IntFlag{
				Name:  "pages-per-shard",
				Usage: "write `N` pages per output file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.documentAI(cmd)
			if err != nil {
				return err
			}
			parent, err := a.parent(cmd)
			if err != nil {
				return err
			}
			out := cmd.String("output")
			if !strings.HasPrefix(out, gcsScheme) {
				return fmt.Errorf("--output %q is not a gs:// URI", out)
			}
			batch := &documentai.GoogleCloudDocumentaiV1beta2BatchProcessDocumentsRequest{}
			for _, uri := range cmd.StringSlice("input") {
				if !strings.HasPrefix(uri, gcsScheme) {
					return fmt.Errorf("--input %q is not a gs:// URI", uri)
				}
				in, err := inputConfig(uri, cmd.String("mime-type"))
				if err != nil {
					return err
				}
				batch.Requests = append(batch.Requests, &documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest{
					Parent:       parent,
					DocumentType: cmd.String("document-type"),
					InputConfig:  in,
					OutputConfig: &documentai.GoogleCloudDocumentaiV1beta2OutputConfig{
						GcsDestination: &documentai.GoogleCloudDocumentaiV1beta2GcsDestination{Uri: out},
						PagesPerShard:  int64(cmd.Int("pages-per-shard")),
					},
				})
			}
			var op *documentai.GoogleLongrunningOperation
			if isLocation(parent) {
				call := s.Projects.Locations.Documents.BatchProcess(parent, batch).Context(ctx).Delegate(a.delegate())
				if f := fields(cmd); f != "" {
					call.Fields(f)
				}
				op, err = call.Do()
			} else {
				call := s.Projects.Documents.BatchProcess(parent, batch).Context(ctx).Delegate(a.delegate())
				if f := fields(cmd); f != "" {
					call.Fields(f)
				}
				op, err = call.Do()
			}
			if err != nil {
				return fmt.Errorf("starting batch process: %w", err)
			}
			return a.printer.Print(op)
		},
	}
}

func (a *app) getOperation(ctx context.Context, cmd *cli.Command, s *documentai.Service, name string) (*documentai.GoogleLongrunningOperation, error) {
	f := fields(cmd)
	if isLocation(name) {
		call := s.Projects.Locations.Operations.Get(name).Context(ctx).Delegate(a.delegate())
		if f != "" {
			call.Fields(f)
		}
		return call.Do()
	}
	call := s.Projects.Operations.Get(name).Context(ctx).Delegate(a.delegate())
	if f != "" {
		call.Fields(f)
	}
	return call.Do()
}

func (a *app) operationsGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print the state of an operation",
		UsageText: "apiary documentai operations get <name>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: usage: %s", errMissingArgs, cmd.UsageText)
			}
			s, err := a.documentAI(cmd)
			if err != nil {
				return err
			}
			op, err := a.getOperation(ctx, cmd, s, cmd.Args().First())
			if err != nil {
				return fmt.Errorf("getting operation: %w", err)
			}
			return a.printer.Print(op)
		},
	}
}

func (a *app) operationsWaitCommand() *cli.Command {
	return &cli.Command{
		Name:      "wait",
		Usage:     "poll an operation until it is done and print it",
		UsageText: "apiary documentai operations wait <name> [--timeout DURATION]",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 30 * time.Minute,
				Usage: "give up after `DURATION`, 0 waits forever",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: usage: %s", errMissingArgs, cmd.UsageText)
			}
			s, err := a.documentAI(cmd)
			if err != nil {
				return err
			}
			if t := cmd.Duration("timeout"); t > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, t)
				defer cancel()
			}
			op, err := a.wait(ctx, cmd, s, cmd.Args().First())
			if err != nil {
				return err
			}
			return a.printer.Print(op)
		},
	}
}

// wait polls the operation name until it is done. A done operation carrying
// an error is returned together with a non-nil error.
func (a *app) wait(ctx context.Context, cmd *cli.Command, s *documentai.Service, name string) (*documentai.GoogleLongrunningOperation, error) {
	bo := a.pollBackoff
	for {
		op, err := a.getOperation(ctx, cmd, s, name)
		if err != nil {
			return nil, fmt.Errorf("getting operation: %w", err)
		}
		if op.Done {
			if op.Error != nil {
				return op, fmt.Errorf("operation %s failed: %s: %s", name, output.Status(op.Error.Code), op.Error.Message)
			}
			return op, nil
		}
		pause := bo.Pause()
		slog.Debug("operation not done", "name", name, "pause", pause)
		if err := gax.Sleep(ctx, pause); err != nil {
			return nil, fmt.Errorf("waiting for operation %s: %w", name, err)
		}
	}
}
