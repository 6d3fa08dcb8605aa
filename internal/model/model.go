package model

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Test{},
		&Part{},
		&TestPart{},
		&Media{},
		&Question{},
		&Answer{},
		&History{},
	}
}
