package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"go.uber.org/zap"

	"timetablegen/internal/domain"
	"timetablegen/internal/schedule"
	"timetablegen/internal/solve"
)

func main() {
	// Define arguments
	dataPtr := flag.String("data", "", "Directory containing the entity documents (teachers.json, classes.json, subjects.json, classrooms.json, fixed_hours.json, common.json)")
	outPtr := flag.String("out", "", "Path to the file where the schedule will be written; if empty, it'll be written into the Standard Output")
	limitPtr := flag.Duration("limit", 0, "Solver wall-clock budget (e.g. 30s); 0 applies a default budget only when an optimization objective is active")
	workersPtr := flag.Int("workers", 0, "Number of parallel search workers; 0 lets the solver decide")
	subjectOnlyPtr := flag.Bool("subject-only", false, "Drop the class dimension from the assignment space")
	blockSlotPtr := flag.Bool("block-whole-slot", false, "Fixed hours block their whole slot school-wide instead of only the reserved room")
	specialtiesPtr := flag.Bool("match-specialties", false, "Only schedule subjects into rooms covering their required classroom parameters")
	flag.Parse()

	// Validate arguments
	if *dataPtr == "" {
		log.Fatal("a data directory must be specified")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	// Extract input
	dataset, err := domain.LoadDataset(*dataPtr)
	if err != nil {
		log.Fatalf("cannot load input data: %v", err)
	}

	config := schedule.Config{
		SubjectOnly:      *subjectOnlyPtr,
		MatchSpecialties: *specialtiesPtr,
		TimeLimit:        *limitPtr,
		Workers:          *workersPtr,
	}
	if *blockSlotPtr {
		config.FixedHourScope = schedule.BlockWholeSlot
	}

	// Initialize engine and generate the timetable
	generator := schedule.NewGenerator(solve.NewCpSatSolver(), config, logger)
	result, err := generator.Generate(dataset)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	if result.Status.Solved() && !schedule.Verify(result.Records, dataset, config) {
		fmt.Printf("Solver status: %v\n", result.Status)
		os.Exit(15)
	}

	// Record order out of the engine is unspecified; sort for presentation
	slices.SortFunc(result.Records, func(a, b schedule.ScheduleRecord) int {
		if rank := dayRank(a.Day) - dayRank(b.Day); rank != 0 {
			return rank
		}
		return a.LessonIndex - b.LessonIndex
	})

	// Marshal output into json
	recordsJson, err := json.MarshalIndent(result.Records, "", "  ")
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if *outPtr == "" {
		fmt.Println(string(recordsJson))
	} else if err := os.WriteFile(*outPtr, recordsJson, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	fmt.Printf("Solver status: %v\n", result.Status)
	if !result.Status.Solved() {
		os.Exit(20)
	}
}

func dayRank(day domain.Day) int {
	return slices.Index(domain.Days, day)
}
