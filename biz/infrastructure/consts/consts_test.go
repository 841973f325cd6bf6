package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{name: "命中单个角色", role: RoleStudent, allowed: []string{RoleStudent}, want: true},
		{name: "命中多个角色之一", role: RoleAdmin, allowed: []string{RoleInstructor, RoleAdmin}, want: true},
		{name: "不在允许列表", role: RoleStudent, allowed: []string{RoleInstructor, RoleAdmin}, want: false},
		{name: "空角色", role: "", allowed: []string{RoleStudent}, want: false},
		{name: "空允许列表", role: RoleAdmin, allowed: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRole(tt.role, tt.allowed...))
		})
	}
}

func TestIsOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		ownerID string
		role    string
		want    bool
	}{
		{name: "本人", actorID: "u1", ownerID: "u1", role: RoleInstructor, want: true},
		{name: "管理员越权放行", actorID: "u2", ownerID: "u1", role: RoleAdmin, want: true},
		{name: "非本人非管理员", actorID: "u2", ownerID: "u1", role: RoleInstructor, want: false},
		{name: "学生访问他人", actorID: "u2", ownerID: "u1", role: RoleStudent, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOwnerOrAdmin(tt.actorID, tt.ownerID, tt.role))
		})
	}
}
