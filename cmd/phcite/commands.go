package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coolbeans/phcite/pkg/citation"
	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/logging"
	"github.com/coolbeans/phcite/pkg/watch"
)

type fileCitations struct {
	File      string              `json:"file" yaml:"file"`
	Citations []citation.Citation `json:"citations" yaml:"citations"`
}

type fileCounts struct {
	File      string                     `json:"file" yaml:"file"`
	Citations []citation.CountedCitation `json:"citations" yaml:"citations"`
}

type fileDockets struct {
	File    string          `json:"file" yaml:"file"`
	Dockets []docket.Docket `json:"dockets" yaml:"dockets"`
}

// processFiles reads every path and applies fn to its text, running up to
// the configured number of workers at once. Results keep the order of
// paths.
func processFiles[T any](ctx context.Context, a *app, cmd *cobra.Command, paths []string, fn func(path, text string) T) ([]T, error) {
	results := make([]T, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			results[i] = fn(path, text)
			a.log.Debug("processed", logging.String("file", path), logging.Int("bytes", len(text)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file...]",
		Short: "List the citations of each file",
		Long: `List the citations found in each file, in extraction order and without
deduplication. Reads stdin when no file is given or the file is "-".

Example:
  phcite extract decision.txt
  echo "Villegas v. Subido, G.R. No. 31711, Sept. 30, 1971, 41 SCRA 190" | phcite extract -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := inputPaths(args)
			results, err := processFiles(cmd.Context(), a, cmd, paths, func(path, text string) fileCitations {
				return fileCitations{File: path, Citations: a.extractor.Citations(text)}
			})
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					printHeader(w, r.File, len(results) > 1)
					for _, c := range r.Citations {
						fmt.Fprintln(w, c.String())
					}
				}
				return nil
			})
		},
	}
}

func countCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file...]",
		Short: "Count the distinct citations of each file",
		Long: `Merge repeated mentions of the same decision and report how often each
one is cited. A docket and its report count as one citation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := inputPaths(args)
			results, err := processFiles(cmd.Context(), a, cmd, paths, func(path, text string) fileCounts {
				return fileCounts{File: path, Citations: a.extractor.FromSource(text)}
			})
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					printHeader(w, r.File, len(results) > 1)
					printCounts(w, r.Citations)
				}
				return nil
			})
		},
	}
}

func printCounts(w io.Writer, counted []citation.CountedCitation) {
	for _, c := range counted {
		fmt.Fprintf(w, "%4d  %s\n", c.Mentions, c.Citation.String())
	}
}

func docketsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dockets [file...]",
		Short: "List raw docket matches",
		Long: `List every docket reference of each file in category order. Procedural
rules (statutory Bar Matters and Administrative Matters) are skipped
unless --all is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			category, _ := cmd.Flags().GetString("category")

			var only docket.Category
			if category != "" {
				c, err := docket.ParseCategory(category)
				if err != nil {
					return err
				}
				only = c
			}

			paths := inputPaths(args)
			results, err := processFiles(cmd.Context(), a, cmd, paths, func(path, text string) fileDockets {
				var kept []docket.Docket
				for _, d := range a.rules.Extract(text, !all) {
					if only == "" || d.Category == only {
						kept = append(kept, d)
					}
				}
				return fileDockets{File: path, Dockets: kept}
			})
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					printHeader(w, r.File, len(results) > 1)
					for _, d := range r.Dockets {
						note := ""
						if a.rules.IsStatutory(d) {
							note = "  [rule]"
						}
						fmt.Fprintf(w, "%s\t%s%s\n", d.String(), d.Context, note)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().Bool("all", false, "include procedural rules")
	cmd.Flags().String("category", "", "only list dockets of this category, e.g. GR")
	return cmd
}

func metaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "meta [line...]",
		Short: "Parse decision sub-title lines",
		Long: `Parse sub-title lines of decision pages, e.g.
"G.R. No. 234179. December 5, 2022 [Date Uploaded: 01/26/2023]", into docket
details. Without arguments each stdin line is parsed. Lines that cannot be
parsed are reported on stderr and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := []string{joinArgs(args)}
			if len(args) == 0 {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			var metas []docket.Meta
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				m, ok := docket.ExtractMeta(line)
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "no docket meta: %s\n", line)
					continue
				}
				metas = append(metas, m)
			}

			return a.render(cmd.OutOrStdout(), metas, func(w io.Writer) error {
				for _, m := range metas {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Category, m.ID, m.DecisionDate, m.UploadDate)
				}
				return nil
			})
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

func lookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <docket>",
		Short: "Normalize a hand-typed docket reference",
		Long: `Normalize a loosely typed docket reference such as
"gr 1241-sc Sep. 1, 1981" or "ac ac-2142-12, 12/4/2000".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := docket.MatchLoose(joinArgs(args))
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), m, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", m.Category, m.ID, m.Date)
				return err
			})
		},
	}
}

func watchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-count citations as files in a directory change",
		Long: `Watch a directory and print the counted citations of every file that is
created or modified. Existing files are counted first unless --skip-existing
is given. Stops on interrupt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skipExisting, _ := cmd.Flags().GetBool("skip-existing")
			out := cmd.OutOrStdout()

			var mu sync.Mutex
			handle := func(_ context.Context, path string) error {
				text, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				result := []fileCounts{{File: path, Citations: a.extractor.FromSource(text)}}

				mu.Lock()
				defer mu.Unlock()
				return a.render(out, result, func(w io.Writer) error {
					printHeader(w, path, true)
					printCounts(w, result[0].Citations)
					return nil
				})
			}

			w, err := watch.New(args[0], handle, watch.Options{
				Extensions: a.cfg.Watch.Extensions,
				Debounce:   a.cfg.Watch.Debounce,
				Logger:     a.log.Named("watch"),
			})
			if err != nil {
				return err
			}

			if !skipExisting {
				paths, err := w.Scan()
				if err != nil {
					return err
				}
				for _, path := range paths {
					if err := handle(cmd.Context(), path); err != nil {
						a.log.Error("handling file", logging.String("path", path), logging.Err(err))
					}
				}
			}
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().Bool("skip-existing", false, "do not count files already in the directory")
	return cmd
}
