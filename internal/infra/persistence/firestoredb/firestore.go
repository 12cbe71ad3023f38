// Package firestoredb contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestoredb

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

func fieldUpdate(path string, value any, isTimestamp bool) firestore.Update {
	if isTimestamp {
		return firestore.Update{Path: path, Value: firestore.ServerTimestamp}
	}

	return firestore.Update{Path: path, Value: value}
}
