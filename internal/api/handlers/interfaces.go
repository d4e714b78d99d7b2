package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user and auth routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	LookupUser(c *gin.Context)
	DeleteUser(c *gin.Context)
}

// ItemColorHandlerInterface defines the methods needed by the item color routes.
type ItemColorHandlerInterface interface {
	GetItemColors(c *gin.Context)
	GetItemColorByID(c *gin.Context)
	CreateItemColor(c *gin.Context)
	UpdateItemColor(c *gin.Context)
	DeleteItemColor(c *gin.Context)
}

// RelationshipHandlerInterface defines the methods needed by the relationship routes.
type RelationshipHandlerInterface interface {
	GetRelationships(c *gin.Context)
	GetRelationship(c *gin.Context)
	SendRequest(c *gin.Context)
	AcceptRequest(c *gin.Context)
	Block(c *gin.Context)
	Unblock(c *gin.Context)
	RemoveRelationship(c *gin.Context)
}

// TaskListHandlerInterface defines the methods needed by the task list routes.
type TaskListHandlerInterface interface {
	GetTaskLists(c *gin.Context)
	GetTaskListByID(c *gin.Context)
	CreateTaskList(c *gin.Context)
	UpdateTaskList(c *gin.Context)
	DeleteTaskList(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ UserHandlerInterface         = (*UserHandler)(nil)
	_ ItemColorHandlerInterface    = (*ItemColorHandler)(nil)
	_ RelationshipHandlerInterface = (*RelationshipHandler)(nil)
	_ TaskListHandlerInterface     = (*TaskListHandler)(nil)
)
