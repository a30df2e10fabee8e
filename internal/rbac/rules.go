package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"member": {
		"post:create",
		"post:upvote",
		"post:delete-own",
		"reply:create",
		"reply:upvote",
		"reply:delete-own",
	},
	"moderator": {
		"post:*",
		"reply:*",
	},
	"admin": {
		"*", // everything
	},
}
