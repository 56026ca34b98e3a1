package query

import "testing"

func TestPlanJoin(t *testing.T) {
	spec := EntitySpec{
		Table:      "things",
		PrimaryKey: "thing_id",
		Join: &JoinSpec{
			Name:   "aux",
			Clause: "LEFT JOIN aux ON aux.thing_id = things.thing_id",
			Filters: []FilterField{
				{Key: "region", Column: "aux.region", Kind: FilterString},
			},
			Keywords: []string{"region", "policy"},
		},
	}

	auxFilter := appliedFilter{field: FilterField{Key: "region", Column: "aux.region"}, aux: true}
	ownFilter := appliedFilter{field: FilterField{Key: "kind", Column: "kind"}}

	tests := []struct {
		name           string
		req            PageRequest
		applied        []appliedFilter
		wantJoined     bool
		wantPredicated bool
		wantSearchAux  bool
	}{
		{"no signal", PageRequest{}, nil, false, false, false},
		{"own filter only", PageRequest{}, []appliedFilter{ownFilter}, false, false, false},
		{"aux filter forces predicated join", PageRequest{}, []appliedFilter{auxFilter}, true, true, false},
		{"keyword search forces predicated join", PageRequest{Search: "region east"}, nil, true, true, true},
		{"unrelated search stays unjoined", PageRequest{Search: "quarterly report"}, nil, false, false, false},
		{"include flag joins without predicate", PageRequest{IncludeJoined: true}, nil, true, false, false},
		{"include plus aux filter is predicated", PageRequest{IncludeJoined: true}, []appliedFilter{auxFilter}, true, true, false},
		{"include plus unrelated search keeps search on own columns", PageRequest{IncludeJoined: true, Search: "quarterly"}, nil, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planJoin(spec, tt.req, tt.applied)
			if plan.joined != tt.wantJoined {
				t.Errorf("joined: want %v, got %v", tt.wantJoined, plan.joined)
			}
			if plan.predicated != tt.wantPredicated {
				t.Errorf("predicated: want %v, got %v", tt.wantPredicated, plan.predicated)
			}
			if plan.searchAux != tt.wantSearchAux {
				t.Errorf("searchAux: want %v, got %v", tt.wantSearchAux, plan.searchAux)
			}
		})
	}
}

func TestPlanJoin_NoJoinSpec(t *testing.T) {
	spec := EntitySpec{Table: "things", PrimaryKey: "thing_id"}
	plan := planJoin(spec, PageRequest{IncludeJoined: true, Search: "anything"}, nil)
	if plan.joined || plan.predicated {
		t.Errorf("entity without join spec must never plan one, got %+v", plan)
	}
}
