package spaceauthhandler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-timesheet-backend/config"
	"hr-timesheet-backend/db"
	spaceusersstore "hr-timesheet-backend/lib/space/users/store"
	authutils "hr-timesheet-backend/lib/utils/auth-utils"
	"hr-timesheet-backend/models"
	authapimodels "hr-timesheet-backend/models/api/auth"
	spaceapimodels "hr-timesheet-backend/models/api/space"
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (*authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (*authapimodels.JWTResponse, error)
	Me(userID string) (*spaceapimodels.SpaceUser, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Login(request authapimodels.LoginRequest) (*authapimodels.JWTResponse, error) {
	user, err := i.spaceUsersStore.FindByEmail(request.Email)
	if err != nil {
		log.
			WithField("email", request.Email).
			WithError(err).
			Error("ошибка поиска пользователя при входе")
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, errors.New("неверный логин или пароль")
	}
	if user.Password != authutils.GetMD5Hash(request.Password) {
		return nil, errors.New("неверный логин или пароль")
	}
	return i.issueTokens(user.ID, user.GetFullName(), user.SpaceID, user.Role.IsSpaceAdmin(), user.Role)
}

func (i impl) RefreshToken(refreshToken string) (*authapimodels.JWTResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token недействителен")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("refresh token недействителен")
	}
	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return nil, errors.New("refresh token недействителен")
	}
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя при обновлении токена")
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, errors.New("пользователь не найден или заблокирован")
	}
	return i.issueTokens(user.ID, user.GetFullName(), user.SpaceID, user.Role.IsSpaceAdmin(), user.Role)
}

func (i impl) Me(userID string) (*spaceapimodels.SpaceUser, error) {
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка получения профиля пользователя")
		return nil, err
	}
	if user == nil {
		return nil, errors.New("пользователь не найден")
	}
	view := user.ToModel()
	return &view, nil
}

func (i impl) issueTokens(userID, name, spaceID string, isAdmin bool, role models.UserRole) (*authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(userID, name, spaceID, isAdmin, role)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования токена")
	}
	refresh, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования refresh токена")
	}
	return &authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
