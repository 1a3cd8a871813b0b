package repository

import (
	"fmt"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

// UserRepository stores managed accounts.
type UserRepository struct {
	items *Collection[models.User]
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(seed []models.User) *UserRepository {
	return &UserRepository{items: NewCollection(seed, func(u models.User) string { return u.ID }, nil)}
}

// List returns every user.
func (r *UserRepository) List() []models.User {
	return r.items.List()
}

// Create assigns the next USR id and appends the user. The sequence starts at
// size+1 and skips forward past ids still in use.
func (r *UserRepository) Create(user models.User) models.User {
	var created models.User
	r.items.Mutate(func(items []models.User) ([]models.User, bool) {
		used := make(map[string]struct{}, len(items))
		for _, u := range items {
			used[u.ID] = struct{}{}
		}
		seq := len(items) + 1
		for {
			user.ID = fmt.Sprintf("USR%03d", seq)
			if _, taken := used[user.ID]; !taken {
				break
			}
			seq++
		}
		created = user
		return append(items, user), true
	})
	return created
}

// Delete removes a user by id.
func (r *UserRepository) Delete(id string) error {
	return r.items.Remove(id)
}
