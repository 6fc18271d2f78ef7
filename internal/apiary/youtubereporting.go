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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/googleapis/apiary/youtubereporting/v1"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const ownerFlag = "on-behalf-of-content-owner"

func (a *app) youtubeReportingCommand() *cli.Command {
	return &cli.Command{
		Name:      "youtubereporting",
		Usage:     "schedule reporting jobs and download YouTube Analytics bulk reports",
		UsageText: "apiary youtubereporting <command> [arguments]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  ownerFlag,
				Usage: "act on behalf of the content owner with external `ID`",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "report-types",
				Usage: "list available report types",
				Commands: []*cli.Command{
					a.reportTypesListCommand(),
				},
			},
			{
				Name:  "jobs",
				Usage: "manage reporting jobs",
				Commands: []*cli.Command{
					a.jobsListCommand(),
					a.jobsGetCommand(),
					a.jobsCreateCommand(),
					a.jobsDeleteCommand(),
				},
			},
			{
				Name:  "reports",
				Usage: "list and download the reports of a job",
				Commands: []*cli.Command{
					a.reportsListCommand(),
					a.reportsGetCommand(),
					a.reportsDownloadCommand(),
				},
			},
		},
	}
}

// youtube returns a client configured from the loaded configuration and the
// content owner to act for.
func (a *app) youtube(cmd *cli.Command) (*youtubereporting.Service, string, error) {
	if err := a.load(cmd); err != nil {
		return nil, "", err
	}
	s, err := youtubereporting.NewWithAuthenticator(a.httpClient, a.auth)
	if err != nil {
		return nil, "", err
	}
	svc := a.cfg.Services.YouTubeReporting
	if e := endpoint(cmd, svc.Endpoint); e != "" {
		s.SetBasePath(e)
	}
	s.SetUserAgent(a.cfg.UserAgent)
	owner := cmd.String(ownerFlag)
	if owner == "" {
		owner = svc.OnBehalfOfContentOwner
	}
	return s, owner, nil
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "request at most `N` results per page",
		},
		&cli.StringFlag{
			Name:  "page-token",
			Usage: "start at the page with `TOKEN`",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "follow next page tokens and print all results",
		},
	}
}

func (a *app) reportTypesListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list report types",
		UsageText: "apiary youtubereporting report-types list [--include-system-managed] [--page-size N] [--all]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "include-system-managed",
				Usage: "include system-managed report types",
			},
		}, listFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			call := s.ReportTypes.List().Context(ctx).Delegate(a.delegate())
			if owner != "" {
				call.OnBehalfOfContentOwner(owner)
			}
			if cmd.IsSet("include-system-managed") {
				call.IncludeSystemManaged(cmd.Bool("include-system-managed"))
			}
			if n := cmd.Int("page-size"); n > 0 {
				call.PageSize(int64(n))
			}
			if tok := cmd.String("page-token"); tok != "" {
				call.PageToken(tok)
			}
			if f := fields(cmd); f != "" {
				call.Fields(f)
			}
			if !cmd.Bool("all") {
				resp, err := call.Do()
				if err != nil {
					return fmt.Errorf("listing report types: %w", err)
				}
				return a.printer.Print(resp)
			}
			all := &youtubereporting.ListReportTypesResponse{}
			err = call.Pages(ctx, func(resp *youtubereporting.ListReportTypesResponse) error {
				all.ReportTypes = append(all.ReportTypes, resp.ReportTypes...)
				return nil
			})
			if err != nil {
				return fmt.Errorf("listing report types: %w", err)
			}
			return a.printer.Print(all)
		},
	}
}

func (a *app) jobsListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list reporting jobs",
		UsageText: "apiary youtubereporting jobs list [--include-system-managed] [--page-size N] [--all]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "include-system-managed",
				Usage: "include system-managed jobs",
			},
		}, listFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			call := s.Jobs.List().Context(ctx).Delegate(a.delegate())
			if owner != "" {
				call.OnBehalfOfContentOwner(owner)
			}
			if cmd.IsSet("include-system-managed") {
				call.IncludeSystemManaged(cmd.Bool("include-system-managed"))
			}
			if n := cmd.Int("page-size"); n > 0 {
				call.PageSize(int64(n))
			}
			if tok := cmd.String("page-token"); tok != "" {
				call.PageToken(tok)
			}
			if f := fields(cmd); f != "" {
				call.Fields(f)
			}
			if !cmd.Bool("all") {
				resp, err := call.Do()
				if err != nil {
					return fmt.Errorf("listing jobs: %w", err)
				}
				return a.printer.Print(resp)
			}
			all := &youtubereporting.ListJobsResponse{}
			err = call.Pages(ctx, func(resp *youtubereporting.ListJobsResponse) error {
				all.Jobs = append(all.Jobs, resp.Jobs...)
				return nil
			})
			if err != nil {
				return fmt.Errorf("listing jobs: %w", err)
			}
			return a.printer.Print(all)
		},
	}
}

func (a *app) jobsGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a reporting job",
		UsageText: "apiary youtubereporting jobs get <job>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: usage: %s", errMissingArgs, cmd.UsageText)
			}
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			call := s.Jobs.Get(cmd.Args().First()).Context(ctx).Delegate(a.delegate())
			if owner != "" {
				call.OnBehalfOfContentOwner(owner)
			}
			if f := fields(cmd); f != "" {
				call.Fields(f)
			}
			job, err := call.Do()
			if err != nil {
				return fmt.Errorf("getting job: %w", err)
			}
			return a.printer.Print(job)
		},
	}
}

func (a *app) jobsCreateCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "create a reporting job",
		UsageText: "apiary youtubereporting jobs create --report-type TYPE --name NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "report-type",
				Usage:    "the `ID` of the report type the job creates",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "name",
				Usage:    "the job name",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			job := &youtubereporting.Job{
				Name:         cmd.String("name"),
				ReportTypeId: cmd.String("report-type"),
			}
			call := s.Jobs.Create(job).Context(ctx).Delegate(a.delegate())
			if owner != "" {
				call.OnBehalfOfContentOwner(owner)
			}
			if f := fields(cmd); f != "" {
				call.Fields(f)
			}
			created, err := call.Do()
			if err != nil {
				return fmt.Errorf("creating job: %w", err)
			}
			return a.printer.Print(created)
		},
	}
}

func (a *app) jobsDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a reporting job",
		UsageText: "apiary youtubereporting jobs delete <job>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: usage: %s", errMissingArgs, cmd.UsageText)
			}
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			call := s.Jobs.Delete(cmd.Args().First()).Context(ctx).Delegate(a.delegate())
			if owner != "" {
				call.OnBehalfOfContentOwner(owner)
			}
			if _, err := call.Do(); err != nil {
				return fmt.Errorf("deleting job: %w", err)
			}
			return nil
		},
	}
}

func reportFilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "created-after",
			Usage: "only reports created after `TIME` (RFC 3339)",
		},
		&cli.StringFlag{
			Name:  "start-time-before",
			Usage: "only reports whose data starts before `TIME`",
		},
		&cli.StringFlag{
			Name:  "start-time-at-or-after",
			Usage: "only reports whose data starts at or after `TIME`",
		},
	}
}

func (a *app) reportsListCall(ctx context.Context, cmd *cli.Command, s *youtubereporting.Service, owner, jobID string) *youtubereporting.JobsReportsListCall {
	call := s.Jobs.Reports.List(jobID).Context(ctx).Delegate(a.delegate())
	if owner != "" {
		call.OnBehalfOfContentOwner(owner)
	}
	if t := cmd.String("created-after"); t != "" {
		call.CreatedAfter(t)
	}
	if t := cmd.String("start-time-before"); t != "" {
		call.StartTimeBefore(t)
	}
	if t := cmd.String("start-time-at-or-after"); t != "" {
		call.StartTimeAtOrAfter(t)
	}
	return call
}

func (a *app) reportsListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list the reports of a job",
		UsageText: "apiary youtubereporting reports list <job> [--created-after TIME] [--start-time-before TIME] [--start-time-at-or-after TIME]",
		Flags:     append(append([]cli.Flag{}, reportFilterFlags()...), listFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: usage: %s", errMissingArgs, cmd.UsageText)
			}
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			call := a.reportsListCall(ctx, cmd, s, owner, cmd.Args().First())
			if n := cmd.Int("page-size"); n > 0 {
				call.PageSize(int64(n))
			}
			if tok := cmd.String("page-token"); tok != "" {
				call.PageToken(tok)
			}
			if f := fields(cmd); f != "" {
				call.Fields(f)
			}
			if !cmd.Bool("all") {
				resp, err := call.Do()
				if err != nil {
					return fmt.Errorf("listing reports: %w", err)
				}
				return a.printer.Print(resp)
			}
			all := &youtubereporting.ListReportsResponse{}
			err = call.Pages(ctx, func(resp *youtubereporting.ListReportsResponse) error {
				all.Reports = append(all.Reports, resp.Reports...)
				return nil
			})
			if err != nil {
				return fmt.Errorf("listing reports: %w", err)
			}
			return a.printer.Print(all)
		},
	}
}

func (a *app) reportsGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print the metadata of a report",
		UsageText: "apiary youtubereporting reports get <job> <report>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("%w: usage: %s", errMissingArgs, cmd.UsageText)
			}
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			call := s.Jobs.Reports.Get(cmd.Args().Get(0), cmd.Args().Get(1)).Context(ctx).Delegate(a.delegate())
			if owner != "" {
				call.OnBehalfOfContentOwner(owner)
			}
			if f := fields(cmd); f != "" {
				call.Fields(f)
			}
			r, err := call.Do()
			if err != nil {
				return fmt.Errorf("getting report: %w", err)
			}
			return a.printer.Print(r)
		},
	}
}

func (a *app) reportsDownloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "download report contents",
		UsageText: `apiary youtubereporting reports download <job> [report...] --dir DIR [--parallel N] [--qps Q]

Without report IDs all reports of the job matching the filter flags are
downloaded. Each report is written to DIR/<job>-<report>.csv.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "write reports to `DIR`",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Value: 4,
				Usage: "download at most `N` reports at once",
			},
			&cli.FloatFlag{
				Name:  "qps",
				Usage: "send at most `Q` requests per second, 0 for no limit",
			},
		}, reportFilterFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("%w: usage: apiary youtubereporting reports download <job> [report...]", errMissingArgs)
			}
			s, owner, err := a.youtube(cmd)
			if err != nil {
				return err
			}
			d := &downloader{
				app:      a,
				s:        s,
				owner:    owner,
				dir:      cmd.String("dir"),
				parallel: cmd.Int("parallel"),
				limiter:  rate.NewLimiter(rate.Inf, 1),
			}
			if q := cmd.Float("qps"); q > 0 {
				d.limiter = rate.NewLimiter(rate.Limit(q), 1)
			}
			jobID := cmd.Args().First()
			reportIDs := cmd.Args().Slice()[1:]
			if len(reportIDs) > 0 {
				return d.downloadIDs(ctx, jobID, reportIDs)
			}
			var reports []*youtubereporting.Report
			err = a.reportsListCall(ctx, cmd, s, owner, jobID).Pages(ctx, func(resp *youtubereporting.ListReportsResponse) error {
				reports = append(reports, resp.Reports...)
				return nil
			})
			if err != nil {
				return fmt.Errorf("listing reports: %w", err)
			}
			return d.download(ctx, reports)
		},
	}
}

// downloader fetches report contents with bounded parallelism.
type downloader struct {
	app      *app
	s        *youtubereporting.Service
	owner    string
	dir      string
	parallel int
	limiter  *rate.Limiter

	mu sync.Mutex // guards writes to app.out
}

func (d *downloader) downloadIDs(ctx context.Context, jobID string, reportIDs []string) error {
	reports := make([]*youtubereporting.Report, len(reportIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.parallel, 1))
	for i, id := range reportIDs {
		g.Go(func() error {
			if err := d.limiter.Wait(ctx); err != nil {
				return err
			}
			call := d.s.Jobs.Reports.Get(jobID, id).Context(ctx).Delegate(d.app.delegate())
			if d.owner != "" {
				call.OnBehalfOfContentOwner(d.owner)
			}
			r, err := call.Do()
			if err != nil {
				return fmt.Errorf("getting report %s: %w", id, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return d.download(ctx, reports)
}

func (d *downloader) download(ctx context.Context, reports []*youtubereporting.Report) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.parallel, 1))
	for _, r := range reports {
		g.Go(func() error {
			if err := d.limiter.Wait(ctx); err != nil {
				return err
			}
			return d.downloadOne(ctx, r)
		})
	}
	return g.Wait()
}

func (d *downloader) downloadOne(ctx context.Context, r *youtubereporting.Report) (err error) {
	name, err := youtubereporting.MediaResourceName(r.DownloadUrl)
	if err != nil {
		return fmt.Errorf("report %s: %w", r.Id, err)
	}
	res, err := d.s.Media.Download(name).Context(ctx).Delegate(d.app.delegate()).Download()
	if err != nil {
		return fmt.Errorf("downloading report %s: %w", r.Id, err)
	}
	defer res.Body.Close()

	path := filepath.Join(d.dir, fmt.Sprintf("%s-%s.csv", r.JobId, r.Id))
	f, err := os.CreateTemp(d.dir, ".download-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	n, err := io.Copy(f, res.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing report %s: %w", r.Id, err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err = fmt.Fprintf(d.app.out, "%s\t%d bytes\n", path, n)
	return err
}
