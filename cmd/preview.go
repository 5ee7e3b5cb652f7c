package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/arithmo/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated question batch (no quiz UI)",
	Long: `Generate a batch of questions and print them with their answers and
classified difficulty tiers.

This is a stateless developer tool for evaluating question quality and the
difficulty mix. Pass --seed for reproducible output.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringSlice("ops", []string{"add", "sub"}, "Operations: add, sub, mul, div")
	previewCmd.Flags().Int("max", 20, "Largest operand")
	previewCmd.Flags().Int("count", 10, "Number of questions")
	previewCmd.Flags().Int("dial", 3, "Difficulty dial (1-5)")
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	opNames, _ := cmd.Flags().GetStringSlice("ops")
	maxOperand, _ := cmd.Flags().GetInt("max")
	count, _ := cmd.Flags().GetInt("count")
	dial, _ := cmd.Flags().GetInt("dial")
	seed, _ := cmd.Flags().GetInt64("seed")

	if dial < 1 || dial > 5 {
		return fmt.Errorf("invalid dial %d: must be 1-5", dial)
	}

	ops, err := parseOperations(opNames)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := quizgen.New(seed)
	questions, err := gen.Generate(quizgen.Settings{
		Operations:    ops,
		MaxOperand:    maxOperand,
		QuestionCount: count,
		Dial:          dial,
	})
	if err != nil {
		return err
	}

	tierCounts := make(map[quizgen.Tier]int)
	for i, q := range questions {
		tier := quizgen.Classify(q, maxOperand)
		tierCounts[tier]++
		fmt.Printf("%2d. %-12s %-6d [%s]\n", i+1, quizgen.Format(q), q.Answer, tier)
	}

	fmt.Printf("\nseed %d — easy %d, medium %d, hard %d\n",
		seed, tierCounts[quizgen.TierEasy], tierCounts[quizgen.TierMedium], tierCounts[quizgen.TierHard])
	return nil
}

// parseOperations maps short flag names onto operations.
func parseOperations(names []string) ([]quizgen.Operation, error) {
	var ops []quizgen.Operation
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "add", "addition", "+":
			ops = append(ops, quizgen.OpAddition)
		case "sub", "subtraction", "-":
			ops = append(ops, quizgen.OpSubtraction)
		case "mul", "multiplication", "x", "*":
			ops = append(ops, quizgen.OpMultiplication)
		case "div", "division", "/":
			ops = append(ops, quizgen.OpDivision)
		default:
			return nil, fmt.Errorf("unknown operation %q: use add, sub, mul or div", name)
		}
	}
	return ops, nil
}
