package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGroupUsecase_ManagerOnly(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewGroupUsecase(users)

	for _, role := range []model.Role{model.RoleCustomer, model.RoleDeliveryCrew, model.RoleUnknown} {
		_, err := uc.ListMembers(context.Background(), role, model.RoleDeliveryCrew)
		assertErrContains(t, err, "manager only")

		_, err = uc.AddMember(context.Background(), role, model.RoleDeliveryCrew, 8)
		assertErrContains(t, err, "manager only")

		err = uc.RemoveMember(context.Background(), role, model.RoleDeliveryCrew, 8)
		assertErrContains(t, err, "manager only")
	}

	users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestGroupUsecase_AddMember_UserNotFound(t *testing.T) {
	users := new(UserRepoMock)

	users.On("FindByID", mock.Anything, int64(8)).Return(model.User{}, repo.ErrNotFound)

	uc := usecase.NewGroupUsecase(users)

	_, err := uc.AddMember(context.Background(), model.RoleManager, model.RoleDeliveryCrew, 8)
	assertErrContains(t, err, "user not found")
}

func TestGroupUsecase_AddMember_SetsRole(t *testing.T) {
	users := new(UserRepoMock)

	users.On("FindByID", mock.Anything, int64(8)).Return(model.User{ID: 8, Email: "crew@example.com", Role: model.RoleCustomer}, nil)
	users.On("UpdateRole", mock.Anything, int64(8), model.RoleDeliveryCrew).Return(nil)

	uc := usecase.NewGroupUsecase(users)

	out, err := uc.AddMember(context.Background(), model.RoleManager, model.RoleDeliveryCrew, 8)
	assert.NoError(t, err)
	assert.Equal(t, int64(8), out.ID)
	assert.Equal(t, "crew@example.com", out.Email)

	users.AssertExpectations(t)
}

// グループから外すとCUSTOMERへ戻る
func TestGroupUsecase_RemoveMember_ResetsToCustomer(t *testing.T) {
	users := new(UserRepoMock)

	users.On("FindByID", mock.Anything, int64(8)).Return(model.User{ID: 8, Role: model.RoleDeliveryCrew}, nil)
	users.On("UpdateRole", mock.Anything, int64(8), model.RoleCustomer).Return(nil)

	uc := usecase.NewGroupUsecase(users)

	err := uc.RemoveMember(context.Background(), model.RoleManager, model.RoleDeliveryCrew, 8)
	assert.NoError(t, err)

	users.AssertExpectations(t)
}

func TestGroupUsecase_RemoveMember_NotInGroup(t *testing.T) {
	users := new(UserRepoMock)

	users.On("FindByID", mock.Anything, int64(8)).Return(model.User{ID: 8, Role: model.RoleCustomer}, nil)

	uc := usecase.NewGroupUsecase(users)

	err := uc.RemoveMember(context.Background(), model.RoleManager, model.RoleDeliveryCrew, 8)
	assertErrContains(t, err, "not in group")

	users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}
