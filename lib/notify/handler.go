package notify

import (
	"time"

	log "github.com/sirupsen/logrus"

	"hr-timesheet-backend/db"
	activitystore "hr-timesheet-backend/lib/notify/activity-store"
	"hr-timesheet-backend/lib/smtp"
	spacesettingshandler "hr-timesheet-backend/lib/space/settings/handler"
	spaceusersstore "hr-timesheet-backend/lib/space/users/store"
	"hr-timesheet-backend/models"
	dbmodels "hr-timesheet-backend/models/db"
)

// Provider рассылает уведомления участникам согласования.
// Сбои уведомлений не прерывают бизнес-операцию.
type Provider interface {
	Notify(spaceID string, userIDs []string, code models.NotificationCode, entityType, entityID string, args ...interface{})
	CloseActivities(spaceID, entityType, entityID string)
	ListActivities(spaceID, userID string, onlyOpen bool) ([]dbmodels.ApprovalActivity, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		activityStore:   activitystore.NewInstance(db.DB),
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	activityStore   activitystore.Provider
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Notify(spaceID string, userIDs []string, code models.NotificationCode, entityType, entityID string, args ...interface{}) {
	data := models.GetNotification(code, args...)
	for _, userID := range userIDs {
		logger := log.
			WithField("space_id", spaceID).
			WithField("user_id", userID).
			WithField("code", string(code))
		rec := dbmodels.ApprovalActivity{
			UserID:     userID,
			Summary:    data.Title,
			Note:       data.Msg,
			DueDate:    time.Now().AddDate(0, 0, 1),
			EntityType: entityType,
			EntityID:   entityID,
		}
		rec.SpaceID = spaceID
		_, err := i.activityStore.Create(rec)
		if err != nil {
			logger.WithError(err).Error("ошибка создания задачи согласования")
		}
		i.sendEmail(spaceID, userID, data, logger)
	}
}

func (i impl) CloseActivities(spaceID, entityType, entityID string) {
	err := i.activityStore.MarkDone(spaceID, entityType, entityID)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("entity_type", entityType).
			WithField("entity_id", entityID).
			WithError(err).
			Error("ошибка закрытия задач согласования")
	}
}

func (i impl) ListActivities(spaceID, userID string, onlyOpen bool) ([]dbmodels.ApprovalActivity, error) {
	return i.activityStore.ListByUser(spaceID, userID, onlyOpen)
}

func (i impl) sendEmail(spaceID, userID string, data models.NotificationData, logger *log.Entry) {
	if !smtp.Instance.IsConfigured() {
		return
	}
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	from, err := spacesettingshandler.Instance.GetValueByCode(spaceID, models.SpaceSenderEmail)
	if err != nil || from == "" {
		return
	}
	err = smtp.Instance.SendEMail(from, user.Email, data.Msg, data.Title)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма с уведомлением")
	}
}
