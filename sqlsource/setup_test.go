package sqlsource_test

import (
	"context"
	"reflect"

	"github.com/vasyalisk/schemafetch/sqlsource"
)

// MockExecutor captures queries and replays canned row sets in order.
type MockExecutor struct {
	Queries  []string
	Args     [][]any
	Results  []*MockRows
	QueryErr error
}

func (m *MockExecutor) QueryContext(ctx context.Context, query string, args ...any) (sqlsource.Rows, error) {
	m.Queries = append(m.Queries, query)
	m.Args = append(m.Args, args)
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	if len(m.Results) == 0 {
		return &MockRows{}, nil
	}
	rows := m.Results[0]
	m.Results = m.Results[1:]
	return rows, nil
}

type MockRows struct {
	Data    [][]any
	idx     int
	ScanErr error
	ErrVal  error
	Closed  bool
}

func (m *MockRows) Next() bool {
	if m.idx < len(m.Data) {
		m.idx++
		return true
	}
	return false
}

func (m *MockRows) Scan(dest ...any) error {
	if m.ScanErr != nil {
		return m.ScanErr
	}
	row := m.Data[m.idx-1]
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (m *MockRows) Close() error {
	m.Closed = true
	return nil
}

func (m *MockRows) Err() error {
	return m.ErrVal
}

// Fixture records: users 1-* roles 1-* permissions.

type User struct {
	ID    int64
	Name  string
	Roles []*Role
}

func (u *User) TableName() string { return "users" }
func (u *User) Columns() []string { return []string{"id", "name"} }
func (u *User) Pointers() []any   { return []any{&u.ID, &u.Name} }
func (u *User) Key() any          { return u.ID }

type Role struct {
	ID          int64
	UserID      int64
	Name        string
	User        *User
	Permissions []*Permission
}

func (r *Role) TableName() string { return "roles" }
func (r *Role) Columns() []string { return []string{"id", "user_id", "name"} }
func (r *Role) Pointers() []any   { return []any{&r.ID, &r.UserID, &r.Name} }
func (r *Role) Key() any          { return r.ID }

type Permission struct {
	ID     int64
	RoleID int64
	Code   string
}

func (p *Permission) TableName() string { return "permissions" }
func (p *Permission) Columns() []string { return []string{"id", "role_id", "code"} }
func (p *Permission) Pointers() []any   { return []any{&p.ID, &p.RoleID, &p.Code} }
func (p *Permission) Key() any          { return p.ID }

func newUser() sqlsource.Record       { return &User{} }
func newRole() sqlsource.Record       { return &Role{} }
func newPermission() sqlsource.Record { return &Permission{} }

func newSource(exec sqlsource.Executor) *sqlsource.Source {
	src := sqlsource.New(exec)
	src.Register(newUser, sqlsource.Relation{
		Name:   "roles",
		Kind:   sqlsource.HasMany,
		Target: newRole,
		Column: "user_id",
		Key:    func(owner sqlsource.Record) any { return owner.(*User).ID },
		Match:  func(related sqlsource.Record) any { return related.(*Role).UserID },
		Attach: func(owner, related sqlsource.Record) {
			user := owner.(*User)
			user.Roles = append(user.Roles, related.(*Role))
		},
	})
	src.Register(newRole,
		sqlsource.Relation{
			Name:   "permissions",
			Kind:   sqlsource.HasMany,
			Target: newPermission,
			Column: "role_id",
			Key:    func(owner sqlsource.Record) any { return owner.(*Role).ID },
			Match:  func(related sqlsource.Record) any { return related.(*Permission).RoleID },
			Attach: func(owner, related sqlsource.Record) {
				role := owner.(*Role)
				role.Permissions = append(role.Permissions, related.(*Permission))
			},
		},
		sqlsource.Relation{
			Name:   "user",
			Kind:   sqlsource.BelongsTo,
			Target: newUser,
			Column: "id",
			Key:    func(owner sqlsource.Record) any { return owner.(*Role).UserID },
			Match:  func(related sqlsource.Record) any { return related.(*User).ID },
			Attach: func(owner, related sqlsource.Record) {
				owner.(*Role).User = related.(*User)
			},
		},
	)
	src.Register(newPermission)
	return src
}
