package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
)

const msgUserNotFound = "User not found"

var errEmailOrPhoneTaken = NewHTTPError(http.StatusBadRequest, "Email or phone number already in use")

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type UserUsecase struct {
	users     repo.UserRepository
	tx        repo.TransactionManager
	hasher    PasswordHasher
	publisher EventPublisher
	now       func() time.Time
}

func NewUserUsecase(users repo.UserRepository, tx repo.TransactionManager, hasher PasswordHasher, publisher EventPublisher) *UserUsecase {
	return &UserUsecase{
		users:     users,
		tx:        tx,
		hasher:    hasher,
		publisher: publisher,
		now:       time.Now,
	}
}

type CreateUserInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     []string
}

// 会員登録
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.PhoneNumber)

	taken, err := u.users.ExistsByEmailOrPhone(ctx, email, phone, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errEmailOrPhoneTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  phone,
		Address:      in.Address,
		Status:       model.UserStatusActive,
	}
	if user.Address == nil {
		user.Address = []string{}
	}

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, errEmailOrPhoneTaken
		}
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

func (u *UserUsecase) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgUserNotFound)
	}
	return user, nil
}

// nilのフィールドは変更しない
type UpdateUserInput struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Address     *[]string
	Password    *string
}

func (u *UserUsecase) Update(ctx context.Context, id string, in UpdateUserInput) (*model.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgUserNotFound)
	}

	if in.FullName != nil {
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Address != nil {
		user.Address = *in.Address
	}

	//emailか電話番号が変わるときだけ重複チェック
	if in.Email != nil || in.PhoneNumber != nil {
		taken, err := u.users.ExistsByEmailOrPhone(ctx, user.Email, user.PhoneNumber, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errEmailOrPhoneTaken
		}
	}

	if in.Password != nil {
		hash, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := u.users.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, errEmailOrPhoneTaken
		}
		return nil, notFoundAs(err, msgUserNotFound)
	}
	return user, nil
}

// 本人による退会
func (u *UserUsecase) DeleteSelf(ctx context.Context, userID string, reason string) error {
	return u.delete(ctx, userID, strings.TrimSpace(reason), nil)
}

// 管理者による削除。理由がなければ "Deleted by admin"
func (u *UserUsecase) DeleteByAdmin(ctx context.Context, admin model.Admin, userID string, reason string) error {
	return u.delete(ctx, userID, strings.TrimSpace(reason), &admin)
}

// スナップショット保存と削除は同じTxで行う
func (u *UserUsecase) delete(ctx context.Context, userID string, reason string, admin *model.Admin) error {
	var snapshot model.DeletedUser

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, msgUserNotFound)
		}

		if admin == nil {
			snapshot = model.NewDeletedUser(*user, reason, model.DefaultDeletionReason, u.now())
		} else {
			snapshot = model.NewDeletedUser(*user, reason, model.DefaultAdminDeletionReason, u.now())
			adminID := admin.ID
			snapshot.DeletedByAdmin = true
			snapshot.AdminID = &adminID
			snapshot.AdminName = admin.FullName()
		}

		if err := r.DeletedUsers().Create(ctx, &snapshot); err != nil {
			return err
		}

		if admin != nil {
			//「誰が」「何を」「どの対象に」「どう変えたか」を残す
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				ActorID:      admin.ID,
				Action:       model.AuditActionDeleteUser,
				ResourceType: model.AuditResourceUser,
				ResourceID:   user.ID,
				BeforeJSON:   auditJSON(map[string]string{"email": user.Email, "fullName": user.FullName}),
				AfterJSON:    auditJSON(map[string]string{"deletionReason": snapshot.DeletionReason}),
			}); err != nil {
				return err
			}
		}

		return notFoundAs(r.Users().Delete(ctx, user.ID), msgUserNotFound)
	})
	if err != nil {
		return err
	}

	publish(ctx, u.publisher, EventUserDeleted, map[string]interface{}{
		"userId":         snapshot.UserID,
		"deletedUserId":  snapshot.ID,
		"deletedByAdmin": snapshot.DeletedByAdmin,
	})
	return nil
}
