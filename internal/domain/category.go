package domain

import "time"

// Category описывает категорию из справочника-белого списка.
// Родительская категория хранится по имени без внешнего ключа —
// справочник используется процессом валидации, а не ограничениями БД.
type Category struct {
	ID             int64
	Name           string
	ParentCategory *string
	Description    string
	IsActive       bool
	CreatedAt      time.Time
}

func NewCategory(name string) *Category {
	return &Category{
		Name:     name,
		IsActive: true,
	}
}
