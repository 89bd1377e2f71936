package service

import (
	"context"
	"log"
)

// AdminNotifier - порт уведомления администратора о результатах реорганизации
type AdminNotifier interface {
	NotifyReorganizationFailed(ctx context.Context, teamID, reason string)
	NotifyReorganizationCompleted(ctx context.Context, teamID, action string)
}

type logAdminNotifier struct{}

// NewLogAdminNotifier создает уведомитель, пишущий в лог
// Замена на email/webhook не затрагивает политику реорганизации
func NewLogAdminNotifier() AdminNotifier {
	return &logAdminNotifier{}
}

func (n *logAdminNotifier) NotifyReorganizationFailed(ctx context.Context, teamID, reason string) {
	log.Printf("[AdminNotifier] reorganization failed for team %s: %s", teamID, reason)
}

func (n *logAdminNotifier) NotifyReorganizationCompleted(ctx context.Context, teamID, action string) {
	log.Printf("[AdminNotifier] reorganization completed for team %s: %s", teamID, action)
}
