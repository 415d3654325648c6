package cdm

type UserPushNotificationTarget struct {
	UserID                string `bson:"userid"`
	PushNotificationToken string `bson:"pushnotificationtoken"`
}
