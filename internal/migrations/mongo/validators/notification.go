package validators

import "go.mongodb.org/mongo-driver/bson"

var NotificationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"user_id", "event_type", "message", "created_at"},
		"properties": bson.M{
			"user_id": bson.M{
				"bsonType":    "string",
				"description": "recipient user id",
			},
			"event_id": bson.M{
				"bsonType":    "string",
				"description": "id of the event that produced this notification",
			},
			"event_type": bson.M{
				"bsonType":    "string",
				"description": "event type, e.g. booking.created",
			},
			"message": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"description": "human readable notification text",
			},
			"read": bson.M{
				"bsonType":    "bool",
				"description": "whether the user has seen this notification",
			},
			"created_at": bson.M{
				"bsonType":    "date",
				"description": "creation timestamp",
			},
		},
	},
}
