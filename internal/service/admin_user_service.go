package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminUserService interface {
	SearchUsers(filters dto.UserFiltersDTO) (*dto.PaginatedResult[dto.AdminUserDTO], error)
	UpdateUserRole(userID uint, role string) (*dto.RoleUpdateResultDTO, error)
	SuspendUser(userID uint, suspend bool) (*dto.SuspensionResultDTO, error)
}

type adminUserService struct {
	userRepo   repository.UserRepository
	surveyRepo repository.SurveyRepository
}

func NewAdminUserService(userRepo repository.UserRepository, surveyRepo repository.SurveyRepository) AdminUserService {
	return &adminUserService{userRepo: userRepo, surveyRepo: surveyRepo}
}

// userOwnership aggregates per-user survey and response counts from a single
// scan of the surveys table.
type userOwnership struct {
	surveys   int
	responses int
}

func (s *adminUserService) SearchUsers(filters dto.UserFiltersDTO) (*dto.PaginatedResult[dto.AdminUserDTO], error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("SearchUsers: failed to load users")
		return nil, fmt.Errorf("loading users: %w", err)
	}

	filtered := filterUsers(users, filters)
	sortUsers(filtered, filters.SortBy, filters.SortDescending)

	totalCount := int64(len(filtered))
	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	pageItems := paginate(filtered, page, pageSize)

	ownership, err := s.ownershipByUser()
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.AdminUserDTO, 0, len(pageItems))
	for _, user := range pageItems {
		counts := ownership[user.ID]
		dtos = append(dtos, adminUserToDTO(&user, counts))
	}
	result := dto.NewPaginatedResult(dtos, totalCount, page, pageSize)
	return &result, nil
}

func (s *adminUserService) UpdateUserRole(userID uint, role string) (*dto.RoleUpdateResultDTO, error) {
	newRole := model.UserRole(strings.ToLower(role))
	if !newRole.Valid() {
		return nil, fmt.Errorf("invalid role %q, valid roles are: user, admin: %w", role, ErrConflict)
	}

	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	oldRole := user.Role
	user.Role = newRole
	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateUserRole: failed to save user")
		return nil, fmt.Errorf("updating user %d: %w", userID, err)
	}

	ownership, err := s.ownershipByUser()
	if err != nil {
		return nil, err
	}
	return &dto.RoleUpdateResultDTO{
		Message: fmt.Sprintf("User role successfully updated from %s to %s", oldRole, newRole),
		User:    adminUserToDTO(user, ownership[user.ID]),
	}, nil
}

func (s *adminUserService) SuspendUser(userID uint, suspend bool) (*dto.SuspensionResultDTO, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	if suspend {
		if !user.IsActive {
			return nil, fmt.Errorf("user is already suspended: %w", ErrConflict)
		}
		user.IsActive = false
	} else {
		if user.IsActive {
			return nil, fmt.Errorf("user is not suspended: %w", ErrConflict)
		}
		user.IsActive = true
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SuspendUser: failed to save user")
		return nil, fmt.Errorf("updating user %d: %w", userID, err)
	}

	verb := "suspended"
	if !suspend {
		verb = "unsuspended"
	}
	return &dto.SuspensionResultDTO{Message: fmt.Sprintf("User %s has been %s", user.Email, verb)}, nil
}

func (s *adminUserService) loadUser(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}
	return user, nil
}

func (s *adminUserService) ownershipByUser() (map[uint]userOwnership, error) {
	surveys, err := s.surveyRepo.FindAllWithResponseCounts()
	if err != nil {
		log.Error().Err(err).Msg("admin: failed to load survey counts")
		return nil, fmt.Errorf("loading survey counts: %w", err)
	}
	ownership := make(map[uint]userOwnership)
	for _, survey := range surveys {
		counts := ownership[survey.UserID]
		counts.surveys++
		counts.responses += int(survey.ResponseCount)
		ownership[survey.UserID] = counts
	}
	return ownership, nil
}

func filterUsers(users []model.User, filters dto.UserFiltersDTO) []model.User {
	term := strings.ToLower(strings.TrimSpace(filters.SearchTerm))
	role := model.UserRole(strings.ToLower(filters.Role))

	filtered := make([]model.User, 0, len(users))
	for _, user := range users {
		if term != "" &&
			!strings.Contains(strings.ToLower(user.Email), term) &&
			!strings.Contains(strings.ToLower(user.FirstName), term) &&
			!strings.Contains(strings.ToLower(user.LastName), term) {
			continue
		}
		if filters.Role != "" && user.Role != role {
			continue
		}
		if filters.IsActive != nil && user.IsActive != *filters.IsActive {
			continue
		}
		if filters.CreatedFromDate != nil && user.CreatedAt.Before(*filters.CreatedFromDate) {
			continue
		}
		if filters.CreatedToDate != nil {
			end := filters.CreatedToDate.AddDate(0, 0, 1).Add(-1)
			if user.CreatedAt.After(end) {
				continue
			}
		}
		filtered = append(filtered, user)
	}
	return filtered
}

func sortUsers(users []model.User, sortBy string, descending bool) {
	less := func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) }
	switch strings.ToLower(sortBy) {
	case "email":
		less = func(i, j int) bool { return users[i].Email < users[j].Email }
	case "firstname":
		less = func(i, j int) bool { return users[i].FirstName < users[j].FirstName }
	case "lastname":
		less = func(i, j int) bool { return users[i].LastName < users[j].LastName }
	case "role":
		less = func(i, j int) bool { return users[i].Role < users[j].Role }
	}
	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(users, less)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func adminUserToDTO(user *model.User, counts userOwnership) dto.AdminUserDTO {
	return dto.AdminUserDTO{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Role:          string(user.Role),
		IsActive:      user.IsActive,
		SurveyCount:   counts.surveys,
		ResponseCount: counts.responses,
		CreatedAt:     user.CreatedAt,
		LastLoginAt:   user.LastLoginAt,
	}
}
