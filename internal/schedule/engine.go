package schedule

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"timetablegen/internal/domain"
	"timetablegen/internal/solve"
)

// FixedHourScope selects how much a fixed-hour reservation blocks.
type FixedHourScope int

const (
	// BlockRoomOnly blocks only the reserved room at the reserved slot,
	// leaving the slot free in other rooms.
	BlockRoomOnly FixedHourScope = iota
	// BlockWholeSlot blocks the reserved slot school-wide.
	BlockWholeSlot
)

// Config collapses the engine variants into one parameterized pipeline.
type Config struct {
	// SubjectOnly drops the class dimension from the variable space;
	// required-hours equalities then bind per subject alone.
	SubjectOnly bool
	// FixedHourScope is the blocking policy for fixed-hour reservations.
	FixedHourScope FixedHourScope
	// MatchSpecialties enforces that a room's specialty set covers the
	// subject's required classroom parameters.
	MatchSpecialties bool
	// TimeLimit bounds the solver's wall clock. Zero applies
	// DefaultObjectiveTimeLimit when an objective is active and leaves pure
	// feasibility models unbounded.
	TimeLimit time.Duration
	// Workers is the solver's parallel search degree; zero lets it decide.
	Workers int
}

// DefaultObjectiveTimeLimit is the solve budget applied when the gap
// objective is active and no explicit limit is configured.
const DefaultObjectiveTimeLimit = 120 * time.Second

// ErrModelInvalid reports a malformed constraint model: a construction
// defect, never a data-driven outcome.
var ErrModelInvalid = errors.New("constraint model is malformed")

// ErrEngineUsed reports a second Generate call on a single-use engine.
var ErrEngineUsed = errors.New("engine instance is single-use; construct a new one to retry")

// Result is one generation outcome. Records carries a full schedule when the
// status is OPTIMAL or FEASIBLE, and only fixed-hour records otherwise. The
// remaining fields are diagnostic metadata, not part of the schedule itself.
type Result struct {
	Records   []ScheduleRecord
	Status    solve.Status
	Objective float64
	WallTime  time.Duration
}

// Generator turns a validated dataset into schedule records through the
// external solving capability.
type Generator interface {
	// Generate builds the constraint model, solves it and decodes the
	// valuations. It blocks until the solver returns; the configured time
	// limit is the only cancellation mechanism. Each Generator instance
	// supports exactly one call.
	Generate(dataset domain.Dataset) (Result, error)
}

type engineState int

const (
	stateUnbuilt engineState = iota
	stateBuilt
	stateSolved
	stateDecoded
)

type engine struct {
	solver solve.Solver
	config Config
	logger *zap.Logger
	state  engineState
}

func NewGenerator(solver solve.Solver, config Config, logger *zap.Logger) Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &engine{
		solver: solver,
		config: config,
		logger: logger,
	}
}

func (e *engine) Generate(dataset domain.Dataset) (Result, error) {
	if e.state != stateUnbuilt {
		return Result{}, ErrEngineUsed
	}

	//** Build the constraint model
	slots := BuildSlotIndex(dataset.Common)
	model := solve.NewModel()
	b := newBuilder(model, dataset, slots, e.config)
	b.addHardConstraints()
	if dataset.Common.GenerationType == domain.LeastOddHoursStudent {
		b.addGapObjective()
	}
	e.state = stateBuilt

	e.logger.Info("model built",
		zap.Int("variables", model.NumVars()),
		zap.Int("constraints", len(model.Constraints)),
		zap.Bool("objective", model.Objective != nil),
	)

	//** Solve
	options := solve.Options{TimeLimit: e.config.TimeLimit, Workers: e.config.Workers}
	if options.TimeLimit == 0 && model.Objective != nil {
		options.TimeLimit = DefaultObjectiveTimeLimit
	}

	solved, err := e.solver.Solve(model, options)
	e.state = stateSolved
	if err != nil {
		if solved.Status == solve.ModelInvalid {
			e.logger.Error("constraint model rejected by solver", zap.Error(err))
			return Result{Status: solve.ModelInvalid, Records: fixedHourRecords(dataset, slots)}, errors.Join(ErrModelInvalid, err)
		}
		return Result{}, err
	}

	result := Result{
		Status:    solved.Status,
		Objective: solved.Objective,
		WallTime:  solved.WallTime,
	}

	//** Decode
	result.Records = decode(solved, b.space, dataset, slots, e.config.SubjectOnly)
	if solved.Status.Solved() {
		e.state = stateDecoded
	}

	switch solved.Status {
	case solve.ModelInvalid:
		e.logger.Error("constraint model is malformed", zap.String("status", solved.Status.String()))
		return result, ErrModelInvalid
	case solve.Infeasible, solve.Unknown:
		e.logger.Warn("no schedule produced",
			zap.String("status", solved.Status.String()),
			zap.Duration("wall_time", solved.WallTime),
		)
	default:
		e.logger.Info("schedule generated",
			zap.String("status", solved.Status.String()),
			zap.Duration("wall_time", solved.WallTime),
			zap.Float64("objective", solved.Objective),
			zap.Int("records", len(result.Records)),
		)
	}

	return result, nil
}
