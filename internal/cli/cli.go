package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/heroes"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
)

// New returns the heroesdata root command.
func New() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "heroesdata",
		Short:         "Query Heroes of the Storm game data documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.dir, "dir", ".", "Directory holding the documents")
	pf.BoolVar(&f.s3, "s3", false, "Read documents from the bucket configured by GAMEDATA_S3_* variables")
	pf.StringVar(&f.gameStrings, "gamestrings", "", "Gamestrings document key")
	pf.StringVar(&f.lang, "lang", "", "Accept-Language value selecting a gamestrings document from the store")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log parse diagnostics to stderr")

	root.AddCommand(
		newUnitCmd(f),
		newListCmd(f),
		newEntityCmd(f, "portrait-pack", "Show a portrait pack", func(doc *gamedata.Document) finder {
			return finderOf(heroes.NewPortraitPackReader(doc))
		}),
		newEntityCmd(f, "announcer", "Show an announcer", func(doc *gamedata.Document) finder {
			return finderOf(heroes.NewAnnouncerReader(doc))
		}),
		newLocalesCmd(f),
	)
	return root
}

// finder looks an entity up by primary or hyperlink id.
type finder func(ctx context.Context, key string, byHyperlink bool) (any, error)

func finderOf[T any](r *gamedata.Reader[T]) finder {
	return func(ctx context.Context, key string, byHyperlink bool) (any, error) {
		if byHyperlink {
			return r.GetByHyperlinkID(ctx, key)
		}
		return r.Get(ctx, key)
	}
}

func newUnitCmd(f *flags) *cobra.Command {
	var (
		data                    string
		hyperlink               bool
		abilities, subAbilities bool
	)

	cmd := &cobra.Command{
		Use:   "unit <id>",
		Short: "Show a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []heroes.UnitOption
			if abilities {
				opts = append(opts, heroes.WithAbilities())
			}
			if subAbilities {
				opts = append(opts, heroes.WithSubAbilities())
			}
			return show(cmd, f, data, args[0], hyperlink, func(doc *gamedata.Document) finder {
				return finderOf(heroes.NewUnitReader(doc, opts...))
			})
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Unit data document key")
	cmd.Flags().BoolVar(&hyperlink, "hyperlink", false, "Look the unit up by hyperlink id")
	cmd.Flags().BoolVar(&abilities, "abilities", false, "Include abilities")
	cmd.Flags().BoolVar(&subAbilities, "sub-abilities", false, "Include sub-abilities")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newEntityCmd(f *flags, use, short string, newFinder func(*gamedata.Document) finder) *cobra.Command {
	var (
		data      string
		hyperlink bool
	)

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, f, data, args[0], hyperlink, newFinder)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Data document key")
	cmd.Flags().BoolVar(&hyperlink, "hyperlink", false, "Look up by hyperlink id")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func show(cmd *cobra.Command, f *flags, data, key string, byHyperlink bool, newFinder func(*gamedata.Document) finder) error {
	ctx := cmd.Context()
	s, err := newSession(cmd, f)
	if err != nil {
		return err
	}

	doc, closeDoc, err := s.load(ctx, data)
	if err != nil {
		return err
	}
	defer closeDoc()

	v, err := newFinder(doc)(ctx, key, byHyperlink)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), v)
}

func newListCmd(f *flags) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "ids",
		Short: "List entity ids of a data document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := newSession(cmd, f)
			if err != nil {
				return err
			}

			doc, closeDoc, err := s.load(ctx, data)
			if err != nil {
				return err
			}
			defer closeDoc()

			ids, err := gamedata.NewReader(doc, func(id string, _ *jsontree.Node) string { return id }).IDs(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Data document key")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newLocalesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales with a gamestrings document in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, f)
			if err != nil {
				return err
			}
			available, err := s.gameStringsByLocale(cmd.Context())
			if err != nil {
				return err
			}
			for _, loc := range locale.All() {
				if key, ok := available[loc]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", loc.Code(), key)
				}
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
