package screen

import "errors"

// BuildResponse resolves a screen and merges form state per the
// navigation protocol: submitted values, when present, fully replace the
// stored ones — a resubmission is never a patch. With neither present
// the client gets an empty map, not null.
//
// The second return value is non-nil instead when the screen does not
// resolve; exactly one of the two is set.
func BuildResponse(repo *Repository, flowID, screenID string, submitted map[string]any) (*Response, *NotFoundDiagnostic) {
	doc, err := repo.Load(flowID, screenID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			// Load only ever fails with ErrNotFound, but keep the
			// diagnostic shape if that changes.
			repo.logger.Error("screen load failed", "flow", flowID, "screen", screenID, "error", err)
		}
		return nil, &NotFoundDiagnostic{
			Error:            "Screen not found",
			FlowID:           flowID,
			ScreenID:         screenID,
			AvailableFlows:   repo.ListFlows(),
			AvailableScreens: repo.ListScreens(flowID),
		}
	}

	formValues := submitted
	if formValues == nil {
		formValues = doc.FormValues
	}
	if formValues == nil {
		formValues = map[string]any{}
	}

	return &Response{
		Navigation: doc.Navigation,
		Screen:     doc.Screen,
		FormValues: formValues,
	}, nil
}
