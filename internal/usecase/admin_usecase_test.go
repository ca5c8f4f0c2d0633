package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminUsecase_Create_DefaultRole(t *testing.T) {
	admins := new(AdminRepoMock)
	admins.On("FindByEmail", mock.Anything, "ops@example.com").Return(nil, repo.ErrNotFound)
	admins.On("Create", mock.Anything, mock.AnythingOfType("*model.Admin")).Return(nil)

	uc := usecase.NewAdminUsecase(admins, new(AuditRepoMock), fakeHasher{})

	a, err := uc.Create(context.Background(), usecase.CreateAdminInput{
		FirstName: "Ops", LastName: "Team", Email: "OPS@example.com", Password: "pw123456",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AdminRoleAdmin, a.Role)
	assert.Equal(t, "hashed:pw123456", a.PasswordHash)
}

func TestAdminUsecase_Create_EmailTaken(t *testing.T) {
	admins := new(AdminRepoMock)
	admins.On("FindByEmail", mock.Anything, "ops@example.com").Return(&model.Admin{}, nil)

	uc := usecase.NewAdminUsecase(admins, new(AuditRepoMock), fakeHasher{})

	_, err := uc.Create(context.Background(), usecase.CreateAdminInput{Email: "ops@example.com", Password: "x"})
	assertHTTPError(t, err, http.StatusBadRequest, "Email already in use")
}

func TestAdminUsecase_Delete_Self(t *testing.T) {
	admins := new(AdminRepoMock)
	uc := usecase.NewAdminUsecase(admins, new(AuditRepoMock), fakeHasher{})

	actor := model.Admin{Role: model.AdminRoleSuperAdmin}
	actor.ID = "a1"

	err := uc.Delete(context.Background(), actor, "a1")
	assertHTTPError(t, err, http.StatusBadRequest, "You cannot delete your own account")
	admins.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAdminUsecase_Delete_WritesAudit(t *testing.T) {
	admins := new(AdminRepoMock)
	audit := new(AuditRepoMock)

	target := &model.Admin{Email: "old@example.com", Role: model.AdminRoleAdmin}
	target.ID = "a2"
	admins.On("FindByID", mock.Anything, "a2").Return(target, nil)
	admins.On("Delete", mock.Anything, "a2").Return(nil)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.ActorID == "a1" && l.Action == model.AuditActionDeleteAdmin && l.ResourceID == "a2"
	})).Return(nil)

	uc := usecase.NewAdminUsecase(admins, audit, fakeHasher{})

	actor := model.Admin{Role: model.AdminRoleSuperAdmin}
	actor.ID = "a1"
	require.NoError(t, uc.Delete(context.Background(), actor, "a2"))
	audit.AssertExpectations(t)
}

func TestAdminUsecase_ListAuditLogs_RejectsUnknownValues(t *testing.T) {
	audit := new(AuditRepoMock)
	uc := usecase.NewAdminUsecase(new(AdminRepoMock), audit, fakeHasher{})

	_, err := uc.ListAuditLogs(context.Background(), repo.AuditQuery{
		Actions:      []model.AuditAction{model.AuditActionDeleteUser, "DROP_TABLE"},
		ResourceType: "warehouse",
	})
	assertHTTPError(t, err, http.StatusBadRequest, "Validation failed")

	he, _ := usecase.AsHTTPError(err)
	assert.Len(t, he.Errors, 2)
	audit.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAdminUsecase_ListAuditLogs_PassesQuery(t *testing.T) {
	audit := new(AuditRepoMock)
	q := repo.AuditQuery{AdminID: "a1", Actions: []model.AuditAction{model.AuditActionUpdateOrderStatus}, Page: 2}
	audit.On("List", mock.Anything, q).Return(repo.AuditPage{Logs: []model.AuditLog{{ActorID: "a1"}}, Total: 3}, nil)

	uc := usecase.NewAdminUsecase(new(AdminRepoMock), audit, fakeHasher{})
	page, err := uc.ListAuditLogs(context.Background(), q)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Logs, 1)
}

func TestAdminUsecase_ResourceHistory(t *testing.T) {
	audit := new(AuditRepoMock)
	audit.On("History", mock.Anything, model.AuditResourceOrder, "o1").Return([]model.AuditLog{{ResourceID: "o1"}}, nil)
	uc := usecase.NewAdminUsecase(new(AdminRepoMock), audit, fakeHasher{})

	logs, err := uc.ResourceHistory(context.Background(), model.AuditResourceOrder, "o1")
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	_, err = uc.ResourceHistory(context.Background(), "warehouse", "w1")
	assertHTTPError(t, err, http.StatusBadRequest, "Validation failed")
}
