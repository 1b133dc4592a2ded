package mocks

import (
	"github.com/stretchr/testify/mock"

	"starwars-blog/internal/interfaces"
)

// MockDatabaseManager implements managers.DatabaseMgr and hands out whatever
// pool the test registered, normally a pgxmock pool.
type MockDatabaseManager struct {
	mock.Mock
}

func (m *MockDatabaseManager) GetPool() interfaces.PgxPoolIface {
	args := m.Called()
	return args.Get(0).(interfaces.PgxPoolIface)
}
