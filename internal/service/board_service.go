package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
)

const assignmentCachePrefix = "planner:assignments:"

type assignmentRepository interface {
	ListForClass(ctx context.Context, classID string) ([]models.Assignment, error)
	ListForStudent(ctx context.Context, studentID string, classIDs []string) ([]models.Assignment, error)
	UpdateDueDate(ctx context.Context, id string, due time.Time) error
}

// board is one planner instance. Each board owns an independent copy of its
// assignments plus the snapshot of due dates taken when the data was loaded;
// nothing is shared between instances.
type board struct {
	id        string
	variant   models.BoardVariant
	scope     models.AssignmentScope
	anchor    time.Time
	createdAt time.Time
	policy    reconcilePolicy

	mu          sync.Mutex
	assignments map[string]*models.Assignment
	order       []string
	snapshot    map[string]time.Time
	saving      bool
}

// BoardService manages planner board instances: the drag-and-drop week grid
// over assignment due dates, with a per-variant reconciliation policy.
type BoardService struct {
	repo      assignmentRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	boardTTL  time.Duration

	mu     sync.RWMutex
	boards map[string]*board
}

// NewBoardService constructs the service.
func NewBoardService(repo assignmentRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, boardTTL time.Duration) *BoardService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if boardTTL <= 0 {
		boardTTL = 4 * time.Hour
	}
	return &BoardService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		boardTTL:  boardTTL,
		boards:    make(map[string]*board),
	}
}

// Open loads the scoped assignments, snapshots their due dates and returns a
// fresh board instance.
func (s *BoardService) Open(ctx context.Context, req dto.OpenBoardRequest, claims *models.JWTClaims) (*dto.BoardView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid board payload")
	}
	variant := models.BoardVariant(strings.ToUpper(req.Variant))
	if !variant.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown board variant")
	}

	scope, err := buildScope(variant, req)
	if err != nil {
		return nil, err
	}
	if err := authorizeBoard(variant, scope, claims); err != nil {
		return nil, err
	}

	anchor := time.Now()
	if req.Anchor != "" {
		parsed, err := time.ParseInLocation(models.DayKeyLayout, req.Anchor, time.Local)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "anchor must be formatted as YYYY-MM-DD")
		}
		anchor = parsed
	}

	assignments, err := s.loadAssignments(ctx, scope)
	if err != nil {
		return nil, err
	}

	b := &board{
		id:          uuid.NewString(),
		variant:     variant,
		scope:       scope,
		anchor:      anchor,
		createdAt:   time.Now(),
		assignments: make(map[string]*models.Assignment, len(assignments)),
		order:       make([]string, 0, len(assignments)),
		snapshot:    make(map[string]time.Time, len(assignments)),
	}
	if variant.Staged() {
		b.policy = &stagedPolicy{persister: s.repo, logger: s.logger}
	} else {
		b.policy = &immediatePolicy{persister: s.repo, logger: s.logger}
	}
	for i := range assignments {
		a := assignments[i]
		b.assignments[a.ID] = &a
		b.order = append(b.order, a.ID)
		b.snapshot[a.ID] = a.DueDate
	}

	s.mu.Lock()
	s.sweepExpiredLocked()
	s.boards[b.id] = b
	s.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	return s.renderLocked(b), nil
}

// View renders a board, optionally re-anchored to another week.
func (s *BoardService) View(boardID, anchor string) (*dto.BoardView, error) {
	b, err := s.lookup(boardID)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if anchor != "" {
		parsed, err := time.ParseInLocation(models.DayKeyLayout, anchor, time.Local)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "anchor must be formatted as YYYY-MM-DD")
		}
		b.anchor = parsed
	}
	return s.renderLocked(b), nil
}

// Drop re-dates an assignment according to the dropped cell. Unknown ids and
// day-guard violations are silent no-ops; a failed immediate persist rolls the
// local value back and surfaces the error.
func (s *BoardService) Drop(ctx context.Context, boardID string, req dto.DropRequest) (*dto.BoardView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid drop payload")
	}
	hour, err := strconv.Atoi(req.Hour)
	if err != nil || hour < models.PlannerFirstHour || hour > models.PlannerLastHour {
		return nil, appErrors.Clone(appErrors.ErrValidation, "hour must be between 07 and 22")
	}

	b, err := s.lookup(boardID)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.assignments[req.AssignmentID]
	if !ok {
		// A stale or malformed drag payload is ignored, not an error.
		s.metrics.RecordDrop(string(b.variant), DropOutcomeIgnored)
		return s.renderLocked(b), nil
	}

	if b.variant.SameDayOnly() {
		sourceDay := req.SourceDay
		if sourceDay == "" {
			sourceDay = models.DayKey(a.DueDate)
		}
		if sourceDay != req.Day {
			s.metrics.RecordDrop(string(b.variant), DropOutcomeRejected)
			return s.renderLocked(b), nil
		}
	}

	due, err := models.CellTime(req.Day, req.Hour)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid cell identifiers")
	}

	if err := b.policy.applyDrop(ctx, b, a, due); err != nil {
		s.metrics.RecordDrop(string(b.variant), DropOutcomeRolledBack)
		return nil, err
	}
	s.metrics.RecordDrop(string(b.variant), DropOutcomeApplied)

	if !b.variant.Staged() {
		s.invalidateScope(ctx)
	}
	return s.renderLocked(b), nil
}

// Save persists the dirty set of a staged board as concurrent independent
// writes. On failure the board stays dirty for retry or cancel.
func (s *BoardService) Save(ctx context.Context, boardID string) (*dto.SaveResult, error) {
	b, err := s.lookup(boardID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	saved, err := b.policy.save(ctx, b)
	if err != nil {
		s.metrics.RecordSave(string(b.variant), "failed", time.Since(start))
		return nil, err
	}
	s.metrics.RecordSave(string(b.variant), "ok", time.Since(start))
	if saved > 0 {
		s.invalidateScope(ctx)
	}
	return &dto.SaveResult{Saved: saved}, nil
}

// Cancel discards staged edits, restoring the last-synced snapshot.
func (s *BoardService) Cancel(boardID string) (*dto.BoardView, error) {
	b, err := s.lookup(boardID)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.policy.cancel(b)
	return s.renderLocked(b), nil
}

// Close discards a board instance.
func (s *BoardService) Close(boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[boardID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "board not found")
	}
	delete(s.boards, boardID)
	return nil
}

func (s *BoardService) lookup(boardID string) (*board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[boardID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "board not found")
	}
	return b, nil
}

// sweepExpiredLocked drops boards past their TTL. Callers hold s.mu.
func (s *BoardService) sweepExpiredLocked() {
	cutoff := time.Now().Add(-s.boardTTL)
	for id, b := range s.boards {
		if b.createdAt.Before(cutoff) {
			delete(s.boards, id)
		}
	}
}

func (s *BoardService) loadAssignments(ctx context.Context, scope models.AssignmentScope) ([]models.Assignment, error) {
	key := scopeCacheKey(scope)
	var assignments []models.Assignment
	if hit, _ := s.cache.Get(ctx, key, &assignments); hit {
		return assignments, nil
	}

	var err error
	if scope.ForStudent() {
		assignments, err = s.repo.ListForStudent(ctx, scope.StudentID, scope.ClassIDs)
	} else {
		assignments, err = s.repo.ListForClass(ctx, scope.ClassID)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}

	_ = s.cache.Set(ctx, key, assignments, 0)
	return assignments, nil
}

func (s *BoardService) invalidateScope(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, assignmentCachePrefix+"*")
}

// renderLocked builds the 7x16 grid view. Callers hold b.mu.
func (s *BoardService) renderLocked(b *board) *dto.BoardView {
	week := models.ComputeWeek(b.anchor)
	dayKeys := make([]string, len(week))
	visible := make(map[string]struct{}, len(week))
	for i, day := range week {
		dayKeys[i] = models.DayKey(day)
		visible[dayKeys[i]] = struct{}{}
	}

	dirtyIDs := b.policy.dirty(b)
	dirtySet := make(map[string]struct{}, len(dirtyIDs))
	for _, id := range dirtyIDs {
		dirtySet[id] = struct{}{}
	}

	cells := make(map[string][]dto.Chip)
	bank := make([]dto.Chip, 0, len(b.order))
	for _, id := range b.order {
		a := b.assignments[id]
		_, dirty := dirtySet[id]
		chip := dto.Chip{
			ID:      a.ID,
			Title:   a.Title,
			ClassID: a.ClassID,
			DueDate: a.DueDate,
			Dirty:   dirty,
		}
		bank = append(bank, chip)

		day := models.DayKey(a.DueDate)
		hour := a.DueDate.Hour()
		if _, onScreen := visible[day]; !onScreen {
			continue
		}
		if hour < models.PlannerFirstHour || hour > models.PlannerLastHour {
			// Due dates outside the visible hours render nowhere.
			continue
		}
		key := models.CellKey(day, models.HourKey(hour))
		cells[key] = append(cells[key], chip)
	}
	sort.Strings(dirtyIDs)

	return &dto.BoardView{
		BoardID:   b.id,
		Variant:   b.variant,
		Week:      dayKeys,
		Hours:     models.PlannerHours(),
		Cells:     cells,
		Bank:      bank,
		DirtyIDs:  dirtyIDs,
		Saving:    b.saving,
		CreatedAt: b.createdAt,
	}
}

func buildScope(variant models.BoardVariant, req dto.OpenBoardRequest) (models.AssignmentScope, error) {
	if variant == models.BoardVariantStudent {
		if req.StudentID == "" || len(req.ClassIDs) == 0 {
			return models.AssignmentScope{}, appErrors.Clone(appErrors.ErrValidation, "student boards require student_id and class_ids")
		}
		return models.AssignmentScope{StudentID: req.StudentID, ClassIDs: req.ClassIDs}, nil
	}
	if req.ClassID == "" {
		return models.AssignmentScope{}, appErrors.Clone(appErrors.ErrValidation, "class boards require class_id")
	}
	return models.AssignmentScope{ClassID: req.ClassID}, nil
}

func authorizeBoard(variant models.BoardVariant, scope models.AssignmentScope, claims *models.JWTClaims) error {
	if claims == nil {
		return nil
	}
	if claims.Role == models.RoleStudent {
		if variant != models.BoardVariantStudent || scope.StudentID != claims.UserID {
			return appErrors.Clone(appErrors.ErrForbidden, "students may only open their own planner")
		}
	}
	return nil
}

func scopeCacheKey(scope models.AssignmentScope) string {
	if scope.ForStudent() {
		return assignmentCachePrefix + "student:" + scope.StudentID + ":" + strings.Join(scope.ClassIDs, ",")
	}
	return assignmentCachePrefix + "class:" + scope.ClassID
}
