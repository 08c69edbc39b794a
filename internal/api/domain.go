package api

import (
	"github.com/taskpoint/assist/internal/chat"
	"github.com/taskpoint/assist/internal/dispatch"
	"github.com/taskpoint/assist/internal/employees"
	"github.com/taskpoint/assist/internal/prompts"
	"github.com/taskpoint/assist/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Chat      chat.System
	Employees employees.System
	Prompts   prompts.System
}

// NewDomain creates all domain systems from the API runtime. The chat system
// receives a pipeline runtime assembled from the employee directory, the
// prompt store, and the oracle agent configuration.
func NewDomain(runtime *Runtime) *Domain {
	employeesSystem := employees.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	dispatchSystem := dispatch.New(
		runtime.Database.Connection(),
		employeesSystem,
		runtime.Logger,
	)

	chatSystem := chat.New(
		&workflow.Runtime{
			Oracle:   workflow.NewCompleter(runtime.Agent),
			Prompts:  promptsSystem,
			Dispatch: dispatchSystem,
			Logger:   runtime.Logger,
		},
		runtime.Logger,
	)

	return &Domain{
		Chat:      chatSystem,
		Employees: employeesSystem,
		Prompts:   promptsSystem,
	}
}
