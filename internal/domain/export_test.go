package domain

import (
	"textaug.dev/pkg/textaug/internal/adapter"
	"textaug.dev/pkg/textaug/internal/controller"
)

// NewWorkflowWithOrchestrator lets external tests replace the orchestrator.
func NewWorkflowWithOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	tableStore adapter.TableStore,
	metrics adapter.Metrics,
	ui controller.UI,
	newOrchestrator func(Augmenter, ...Option) Orchestrator,
) Workflow {
	w := NewWorkflow(fsAdapter, tableStore, metrics, ui).(*workflow)
	w.newOrchestrator = newOrchestrator

	return w
}
