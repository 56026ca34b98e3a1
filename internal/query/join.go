package query

// joinPlan records whether, and why, the auxiliary join is attached to the
// current query. Joins dominate query cost for this shape, so the planner
// attaches one only when something actually references the joined table.
type joinPlan struct {
	// joined is true when the join clause is attached to the page query.
	joined bool
	// predicated is true when a filter or search predicate references the
	// auxiliary table. A purely enrichment-driven join (include flag only)
	// leaves this false, and the count query may then skip the join.
	predicated bool
	// searchAux is true when the search term itself triggered the join. Only
	// then does the search disjunction extend across auxiliary columns; an
	// enrichment-only join must not widen the search, or the count and page
	// queries would disagree.
	searchAux bool
}

// planJoin decides whether the auxiliary table must be joined:
//
//  1. the caller explicitly requested inclusion, or
//  2. a recognized filter belongs to the auxiliary vocabulary, or
//  3. the search term plausibly targets the auxiliary domain.
//
// The plan must be monotonic: a query whose predicates reference auxiliary
// columns always gets the join; a query with no such signal never does.
func planJoin(spec EntitySpec, req PageRequest, applied []appliedFilter) joinPlan {
	if spec.Join == nil {
		return joinPlan{}
	}

	plan := joinPlan{}
	if req.Search != "" && suggestsJoinedData(req.Search, spec.Join.Keywords) {
		// The search disjunction will include auxiliary columns.
		plan = joinPlan{joined: true, predicated: true, searchAux: true}
	}

	for _, a := range applied {
		if a.aux {
			plan.joined = true
			plan.predicated = true
		}
	}

	if req.IncludeJoined {
		plan.joined = true
	}

	return plan
}
