package app

import "github.com/pressplay/gamestore/internal/infrastructure/lock"

func (a *application) InitUserLockManager() *lock.UserLockManager {
	return lock.NewUserLockManager()
}
