package sat

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional JSON file mapping solver names to their
// executable paths. Solvers missing from the file resolve through $PATH.
var ConfigPath = "config.json"

func parseSolution(solverOutput string) SATSolution {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})
	if len(valueLines) == 0 {
		return nil
	}

	values := lo.FlatMap(valueLines, func(line string, _ int) []string {
		return strings.Fields(line[1:])
	})

	solution := make(SATSolution, 0, len(values))
	for _, value := range values {
		literal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		if literal == 0 { // Solvers terminate the model with a 0 literal
			break
		}
		solution = append(solution, literal)
	}
	return solution
}

func executablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		log.Fatalf("cannot read %v file: %v", ConfigPath, err)
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		return solver
	}
	return path
}
