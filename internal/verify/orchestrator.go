package verify

// VerifyWorkerDocuments runs every applicable pairwise comparison across
// a worker's document set. Fewer than 2 present documents short-circuits
// to incomplete with no comparisons attempted. Pairs where one side is
// absent are simply not attempted; they are neither failures nor grounds
// for an incomplete verdict.
func VerifyWorkerDocuments(personal, edu10th, edu12th *Document, nameThreshold float64) VerificationResult {
	result := VerificationResult{
		OverallStatus: StatusVerified,
		Comparisons:   []Comparison{},
		Errors:        []string{},
	}

	for _, doc := range []*Document{personal, edu10th, edu12th} {
		if doc != nil {
			result.DocumentsCount++
		}
	}
	if result.DocumentsCount < 2 {
		result.OverallStatus = StatusIncomplete
		result.Errors = append(result.Errors, "Need at least 2 documents for verification")
		return result
	}

	performed := 0
	failed := 0
	run := func(doc1, doc2 *Document, label1, label2, pair string) {
		if doc1 == nil || doc2 == nil {
			return
		}
		comp := CompareDocuments(doc1, doc2, label1, label2, pair, nameThreshold)
		result.Comparisons = append(result.Comparisons, Comparison{
			Type:    pair,
			Status:  comp.Status,
			Details: comp,
		})
		performed++
		if comp.Status == StatusFailed {
			failed++
		}
	}

	run(personal, edu10th, "Personal", "10th", PairPersonalVs10th)
	run(personal, edu12th, "Personal", "12th", PairPersonalVs12th)
	run(edu10th, edu12th, "10th", "12th", Pair10thVs12th)

	switch {
	case failed > 0:
		result.OverallStatus = StatusFailed
	case performed == 0:
		// Unreachable behind the document-count guard, but kept so a
		// verdict is never "verified" without at least one comparison.
		result.OverallStatus = StatusIncomplete
	default:
		result.OverallStatus = StatusVerified
	}
	return result
}

// ExtractVerificationErrors distills a failed verification into the
// summary persisted on the worker record. It returns nil unless the
// overall status is failed, and nil again if no failed comparison carries
// issues.
func ExtractVerificationErrors(result VerificationResult) *ErrorSummary {
	if result.OverallStatus != StatusFailed {
		return nil
	}
	summary := &ErrorSummary{Status: StatusFailed}
	for _, comp := range result.Comparisons {
		if comp.Status != StatusFailed || len(comp.Details.Issues) == 0 {
			continue
		}
		summary.Comparisons = append(summary.Comparisons, FailedComparison{
			Type:   comp.Type,
			Issues: comp.Details.Issues,
		})
	}
	if len(summary.Comparisons) == 0 {
		return nil
	}
	return summary
}
