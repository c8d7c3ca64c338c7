package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"fitnesspr/portal/internal/domain"
)

// ProgramsService wraps the workout program endpoints and the derived
// "current program" / "today's workout" reads.
type ProgramsService struct {
	c *Client
}

func (s *ProgramsService) List(ctx context.Context) ([]domain.Program, error) {
	var programs []domain.Program
	if err := s.c.do(ctx, http.MethodGet, "/programs", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (s *ProgramsService) Get(ctx context.Context, id string) (*domain.Program, error) {
	var program domain.Program
	if err := s.c.do(ctx, http.MethodGet, "/programs/"+id, nil, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramsService) Create(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	var created domain.Program
	if err := s.c.do(ctx, http.MethodPost, "/programs", program, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ProgramsService) Update(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	var updated domain.Program
	if err := s.c.do(ctx, http.MethodPut, "/programs/"+program.ID, program, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProgramsService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/programs/"+id, nil, nil)
}

// ForClient lists the programs assigned to a client, in backend order.
func (s *ProgramsService) ForClient(ctx context.Context, clientID string) ([]domain.Program, error) {
	var programs []domain.Program
	if err := s.c.do(ctx, http.MethodGet, "/programs/client/"+clientID, nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// CurrentProgram returns the client's active program: the first entry with
// is_active set, in backend order. It returns nil (and no error) when the
// client has no programs or none is active.
func (s *ProgramsService) CurrentProgram(ctx context.Context, clientID string) (*domain.Program, error) {
	programs, err := s.ForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return firstActiveProgram(programs), nil
}

// TodayWorkout returns the active program's exercises scheduled for the
// weekday of now, sorted ascending by order_in_program. The list is empty
// when the client has no active program or nothing is scheduled today.
// Fetch failures are returned to the caller, who decides what to show.
func (s *ProgramsService) TodayWorkout(ctx context.Context, clientID string, now time.Time) ([]domain.ProgramExercise, error) {
	program, err := s.CurrentProgram(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return []domain.ProgramExercise{}, nil
	}

	today := domain.DayNumber(now)
	workout := []domain.ProgramExercise{}
	for _, pe := range program.Exercises {
		if pe.DayNumber == today {
			workout = append(workout, pe)
		}
	}
	sort.SliceStable(workout, func(i, j int) bool {
		return workout[i].OrderInProgram < workout[j].OrderInProgram
	})
	return workout, nil
}

// MarkExerciseCompleted sends the completion flag for one exercise in a
// program. Repeated calls simply resend the same flag.
func (s *ProgramsService) MarkExerciseCompleted(ctx context.Context, programID, programExerciseID string, completed bool) error {
	path := fmt.Sprintf("/programs/%s/exercises/%s/complete", programID, programExerciseID)
	body := map[string]bool{"completed": completed}
	return s.c.do(ctx, http.MethodPost, path, body, nil)
}

// firstActiveProgram implements the "first active wins" selection rule.
func firstActiveProgram(programs []domain.Program) *domain.Program {
	for i := range programs {
		if programs[i].IsActive {
			return &programs[i]
		}
	}
	return nil
}
