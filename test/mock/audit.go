// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/mobility/audit"
)

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, query audit.Query) ([]audit.AuditLog, error) {
	args := m.Called(ctx, query)
	logs, _ := args.Get(0).([]audit.AuditLog)
	return logs, args.Error(1)
}
