package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Notification NotificationRepository
	Transaction  TransactionRepository
	Debt         DebtRepository
	Receipt      ReceiptRepository
}

// NewRepositories builds the Postgres-backed repository set. When demoMode
// is set the notification store is swapped for the non-persistent demo
// implementation; everything else keeps its real backing store.
func NewRepositories(db *sqlx.DB, demoMode bool) *Repositories {
	repos := &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Notification: NewNotificationRepository(db),
		Transaction:  NewTransactionRepository(db),
		Debt:         NewDebtRepository(db),
		Receipt:      NewReceiptRepository(db),
	}

	if demoMode {
		repos.Notification = NewDemoNotificationRepository()
	}

	return repos
}
