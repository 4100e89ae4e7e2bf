package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/generator"
	"ninegrid.dev/engine/internal/hint"
	"ninegrid.dev/engine/internal/ports"
	"ninegrid.dev/engine/internal/solver"
	"ninegrid.dev/engine/internal/usecase"
	"ninegrid.dev/engine/internal/validator"
)

var log = logrus.New()

var (
	flagSolver  string
	flagProfile bool
	flagVerbose bool
)

func newService() *usecase.Service {
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(flagSolver)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}
	return usecase.NewService(s, generator.New(s), validator.New(), hint.NewSingles())
}

// readGrid loads an 81-cell board from a file argument, or stdin when the
// argument is absent or "-".
func readGrid(args []string) (domain.Grid, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.ParseGrid(string(data))
}

func newGenerateCmd() *cobra.Command {
	var (
		diffStr string
		seed    int64
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := domain.ParseDifficulty(diffStr)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			uc := newService()
			p, st, err := uc.Generate(cmd.Context(), seed, diff)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"difficulty": diff.String(),
				"seed":       seed,
				"givens":     p.Givens.Filled(),
				"nodes":      st.Nodes,
				"dur":        st.Duration.Round(time.Millisecond),
			}).Info("generated")
			if compact {
				fmt.Println(p.Givens.Compact())
				fmt.Println(p.Solution.Compact())
				return nil
			}
			fmt.Println(p.Givens.String())
			fmt.Println("solution:")
			fmt.Println(p.Solution.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&diffStr, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().BoolVar(&compact, "compact", false, "print 81-character rows instead of boards")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a board read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args)
			if err != nil {
				return err
			}
			uc := newService()
			out, st, err := uc.Solve(cmd.Context(), &g)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"nodes": st.Nodes,
				"dur":   st.Duration.Round(time.Millisecond),
			}).Info("solved")
			if compact {
				fmt.Println(out.Compact())
			} else {
				fmt.Println(out.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print an 81-character row instead of a board")
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report conflicts and solution count for a board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args)
			if err != nil {
				return err
			}
			uc := newService()
			conf, _, err := uc.Conflicts(cmd.Context(), &g)
			if err != nil {
				return err
			}
			for _, cc := range conf {
				fmt.Printf("conflict at row %d, col %d\n", cc.Row, cc.Col)
			}
			n, st, err := uc.CountSolutions(cmd.Context(), &g, 2)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"nodes": st.Nodes,
				"dur":   st.Duration.Round(time.Millisecond),
			}).Debug("counted")
			switch n {
			case 0:
				fmt.Println("no solution")
			case 1:
				fmt.Println("unique solution")
			default:
				fmt.Println("multiple solutions")
			}
			if len(conf) > 0 || n != 1 {
				return fmt.Errorf("board is not a conflict-free unique puzzle")
			}
			return nil
		},
	}
	return cmd
}

func newHintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint [file]",
		Short: "Suggest the next logical placement for a board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args)
			if err != nil {
				return err
			}
			uc := newService()
			b := &domain.Board{Values: g}
			hh, ok, err := uc.Hint(cmd.Context(), b, domain.StrategySingles)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("no hint found")
				return nil
			}
			fmt.Printf("%s (row %d, col %d)\n", hh.Message, hh.Cells[0].Row, hh.Cells[0].Col)
			return nil
		},
	}
	return cmd
}

func main() {
	var prof interface{ Stop() }
	root := &cobra.Command{
		Use:           "ninegrid",
		Short:         "9x9 number-placement puzzle engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if flagProfile {
				prof = profile.Start(profile.ProfilePath("."))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
			}
		},
	}
	root.PersistentFlags().StringVar(&flagSolver, "solver", "backtrack", "solver to use: backtrack|dlx")
	root.PersistentFlags().BoolVar(&flagProfile, "profile", false, "write a CPU profile to the current directory")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newGenerateCmd(), newSolveCmd(), newCheckCmd(), newHintCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
