package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
)

const msgAdminNotFound = "Admin not found"

type AdminUsecase struct {
	admins repo.AdminRepository
	audit  repo.AuditLogRepository
	hasher PasswordHasher
}

func NewAdminUsecase(admins repo.AdminRepository, audit repo.AuditLogRepository, hasher PasswordHasher) *AdminUsecase {
	return &AdminUsecase{admins: admins, audit: audit, hasher: hasher}
}

type CreateAdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      model.AdminRole
}

func (u *AdminUsecase) Create(ctx context.Context, in CreateAdminInput) (*model.Admin, error) {
	role := in.Role
	if role == "" {
		role = model.AdminRoleAdmin
	}
	if !role.IsValid() {
		return nil, NewValidationError(FieldError{Field: "role", Message: "role must be Admin or Super Admin"})
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := u.admins.FindByEmail(ctx, email); err == nil {
		return nil, NewHTTPError(http.StatusBadRequest, "Email already in use")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewHTTPError(http.StatusBadRequest, "Email already in use")
		}
		return nil, err
	}
	return admin, nil
}

func (u *AdminUsecase) List(ctx context.Context) ([]model.Admin, error) {
	return u.admins.List(ctx)
}

// 自分自身は消せない
func (u *AdminUsecase) Delete(ctx context.Context, actor model.Admin, id string) error {
	if actor.ID == id {
		return NewHTTPError(http.StatusBadRequest, "You cannot delete your own account")
	}

	target, err := u.admins.FindByID(ctx, id)
	if err != nil {
		return notFoundAs(err, msgAdminNotFound)
	}
	if err := u.admins.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgAdminNotFound)
	}

	return u.audit.Create(ctx, model.AuditLog{
		ActorID:      actor.ID,
		Action:       model.AuditActionDeleteAdmin,
		ResourceType: model.AuditResourceAdmin,
		ResourceID:   target.ID,
		BeforeJSON:   auditJSON(map[string]string{"email": target.Email, "role": string(target.Role)}),
		AfterJSON:    "{}",
	})
}

// 未知のaction/resourceTypeは400
func (u *AdminUsecase) ListAuditLogs(ctx context.Context, q repo.AuditQuery) (repo.AuditPage, error) {
	var errs []FieldError
	for _, a := range q.Actions {
		if !a.IsValid() {
			errs = append(errs, FieldError{Field: "action", Message: "unknown action " + string(a)})
		}
	}
	if q.ResourceType != "" && !q.ResourceType.IsValid() {
		errs = append(errs, FieldError{Field: "resourceType", Message: "unknown resource type " + string(q.ResourceType)})
	}
	if len(errs) > 0 {
		return repo.AuditPage{}, NewValidationError(errs...)
	}
	return u.audit.List(ctx, q)
}

func (u *AdminUsecase) ResourceHistory(ctx context.Context, resourceType model.AuditResourceType, resourceID string) ([]model.AuditLog, error) {
	if !resourceType.IsValid() {
		return nil, NewValidationError(FieldError{Field: "resourceType", Message: "unknown resource type " + string(resourceType)})
	}
	return u.audit.History(ctx, resourceType, resourceID)
}
