package validators

import "go.mongodb.org/mongo-driver/bson"

var ListingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"location",
			"nightly_price",
			"currency",
			"property_type",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 5000,
			},

			"location": bson.M{
				"bsonType": "object",
				"required": []string{"city", "country"},
				"properties": bson.M{
					"city": bson.M{
						"bsonType":  "string",
						"minLength": 1,
						"maxLength": 100,
					},
					"country": bson.M{
						"bsonType":  "string",
						"minLength": 2,
						"maxLength": 100,
					},
					"address": bson.M{
						"bsonType":  "string",
						"maxLength": 300,
					},
					"lat": bson.M{
						"bsonType": []string{"double", "int"},
						"minimum":  -90,
						"maximum":  90,
					},
					"lng": bson.M{
						"bsonType": []string{"double", "int"},
						"minimum":  -180,
						"maximum":  180,
					},
				},
			},

			"nightly_price": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"currency": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 3,
			},

			"images": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"amenities": bson.M{
				"bsonType": "array",
				"maxItems": 50,
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"host_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"rating": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
				"maximum":  5,
			},

			"bedrooms": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  50,
			},

			"bathrooms": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
				"maximum":  50,
			},

			"capacity": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  200,
			},

			"property_type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Apartment",
					"House",
					"Villa",
					"Condo",
					"Cabin",
					"Cottage",
					"Studio",
					"Townhouse",
				},
			},

			"featured": bson.M{
				"bsonType": "bool",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
