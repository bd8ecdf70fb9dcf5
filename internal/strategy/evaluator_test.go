package strategy

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/casemark/strategist/pkg/models"
)

func findRoute(t *testing.T, assessments []models.RouteAssessment, id models.RouteID) models.RouteAssessment {
	t.Helper()
	for _, a := range assessments {
		if a.RouteID == id {
			return a
		}
	}
	t.Fatalf("route %s missing from assessments", id)
	return models.RouteAssessment{}
}

func TestEvaluate_AlwaysReturnsFullCatalog(t *testing.T) {
	inputs := []Context{
		{},
		{Charge: models.Charge{SpecificIntent: true}},
		{Text: "acted in self defence after being attacked first"},
		{
			Charge:           models.Charge{Offence: "s18 wounding", SpecificIntent: true},
			ProceduralStatus: models.ProceduralUnsafe,
			Elements: []models.ElementState{
				{ID: models.ElementIdentification, Support: models.SupportStrong},
			},
			Dependencies: []models.Dependency{{ID: "cctv_window", Status: models.DependencyOutstanding}},
		},
	}

	for _, ctx := range inputs {
		got := Evaluate(ctx)
		if len(got) != 8 {
			t.Fatalf("Evaluate returned %d assessments, want 8", len(got))
		}
		var ids []models.RouteID
		for _, a := range got {
			ids = append(ids, a.RouteID)
		}
		if diff := cmp.Diff(models.AllRoutes[:], ids); diff != "" {
			t.Errorf("route catalog mismatch:\n%s", diff)
		}
		for _, a := range got {
			if len(a.Reasons) == 0 {
				t.Errorf("route %s has no reasons", a.RouteID)
			}
		}
	}
}

func TestIdentificationChallenge(t *testing.T) {
	tests := []struct {
		name    string
		support models.Support
		text    string
		want    models.RouteStatus
	}{
		{"strong support blocks", models.SupportStrong, "", models.RouteBlocked},
		{"strong support blocks despite markers", models.SupportStrong, "poor lighting at the scene", models.RouteBlocked},
		{"weak support is viable", models.SupportWeak, "", models.RouteViable},
		{"no support is viable", models.SupportNone, "", models.RouteViable},
		{"uncertainty marker is viable", models.SupportSome, "the witness had only a brief glimpse", models.RouteViable},
		{"some support no markers is risky", models.SupportSome, "", models.RouteRisky},
		{"absence of data alone is not viable", models.SupportUnknown, "", models.RouteRisky},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{Text: tt.text}
			if tt.support != models.SupportUnknown {
				ctx.Elements = []models.ElementState{{ID: models.ElementIdentification, Support: tt.support}}
			}
			got := findRoute(t, Evaluate(ctx), models.RouteIdentificationChallenge)
			if got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestSelfDefence_NeverInferred(t *testing.T) {
	// A case stacked with everything except self-defence vocabulary.
	ctx := Context{
		Charge:           models.Charge{SpecificIntent: true},
		ProceduralStatus: models.ProceduralUnsafe,
		Elements: []models.ElementState{
			{ID: models.ElementIdentification, Support: models.SupportNone},
			{ID: models.ElementSpecificIntent, Support: models.SupportNone},
			{ID: models.ElementActCausation, Support: models.SupportNone},
		},
		Text: "poor lighting, brief glimpse, mechanism unclear, no weapon was found",
	}
	got := findRoute(t, Evaluate(ctx), models.RouteSelfDefence)
	if got.Status != models.RouteBlocked {
		t.Fatalf("self defence = %s without any marker, want blocked", got.Status)
	}

	ctx.Text += " and the defendant acted in self defence"
	got = findRoute(t, Evaluate(ctx), models.RouteSelfDefence)
	if got.Status != models.RouteViable {
		t.Fatalf("self defence = %s with explicit marker, want viable", got.Status)
	}
}

func TestMitigation_OnlyOnRecordedDecision(t *testing.T) {
	got := findRoute(t, Evaluate(Context{}), models.RouteMitigationEarlyResolution)
	if got.Status != models.RouteRisky {
		t.Fatalf("mitigation = %s with no recorded position, want risky", got.Status)
	}

	// Text hinting at a plea must not promote it.
	got = findRoute(t, Evaluate(Context{Text: "client wishes to plead guilty"}), models.RouteMitigationEarlyResolution)
	if got.Status != models.RouteRisky {
		t.Fatalf("mitigation = %s on text alone, want risky", got.Status)
	}

	got = findRoute(t, Evaluate(Context{
		Position: &models.CasePosition{GuiltyPosture: true},
	}), models.RouteMitigationEarlyResolution)
	if got.Status != models.RouteViable {
		t.Fatalf("mitigation = %s with recorded guilty posture, want viable", got.Status)
	}
}

func TestProceduralDisclosureLeverage(t *testing.T) {
	got := findRoute(t, Evaluate(Context{
		Dependencies: []models.Dependency{
			{ID: "cctv_incident_window", Status: models.DependencyOutstanding},
			{ID: "mg11_statement", Status: models.DependencyOutstanding},
		},
	}), models.RouteProceduralDisclosureLeverage)
	if got.Status != models.RouteViable {
		t.Fatalf("status = %s with outstanding CCTV, want viable", got.Status)
	}
	if diff := cmp.Diff([]string{"cctv_incident_window"}, got.RequiredDependencies); diff != "" {
		t.Errorf("required dependencies mismatch:\n%s", diff)
	}

	got = findRoute(t, Evaluate(Context{
		ProceduralStatus: models.ProceduralSafe,
		Dependencies:     []models.Dependency{{ID: "cctv_incident_window", Status: models.DependencyServed}},
	}), models.RouteProceduralDisclosureLeverage)
	if got.Status != models.RouteRisky {
		t.Fatalf("status = %s with everything served, want risky", got.Status)
	}
}

func TestIntentRoutes_FollowChargeAndSupport(t *testing.T) {
	lesser := Context{Charge: models.Charge{Offence: "s20 wounding", SpecificIntent: false}}
	if got := findRoute(t, Evaluate(lesser), models.RouteIntentDenial); got.Status != models.RouteBlocked {
		t.Errorf("intent denial on lesser charge = %s, want blocked", got.Status)
	}
	if got := findRoute(t, Evaluate(lesser), models.RouteAlternativeMentalState); got.Status != models.RouteBlocked {
		t.Errorf("alternative offence on lesser charge = %s, want blocked", got.Status)
	}

	higher := Context{
		Charge: models.Charge{Offence: "s18 wounding with intent", SpecificIntent: true},
		Elements: []models.ElementState{
			{ID: models.ElementSpecificIntent, Support: models.SupportWeak},
		},
	}
	if got := findRoute(t, Evaluate(higher), models.RouteIntentDenial); got.Status != models.RouteViable {
		t.Errorf("intent denial with weak intent = %s, want viable", got.Status)
	}
	if got := findRoute(t, Evaluate(higher), models.RouteAlternativeMentalState); got.Status != models.RouteViable {
		t.Errorf("alternative offence with weak intent = %s, want viable", got.Status)
	}

	higher.Elements[0].Support = models.SupportStrong
	if got := findRoute(t, Evaluate(higher), models.RouteIntentDenial); got.Status != models.RouteBlocked {
		t.Errorf("intent denial with strong intent = %s, want blocked", got.Status)
	}
}

func TestWeaponAndActRoutes(t *testing.T) {
	hedged := Context{Text: "struck with what looked like a bottle, mechanism unclear"}
	if got := findRoute(t, Evaluate(hedged), models.RouteWeaponUncertaintyCausation); got.Status != models.RouteViable {
		t.Errorf("weapon route on hedged text = %s, want viable", got.Status)
	}

	plain := Context{
		Elements: []models.ElementState{
			{ID: models.ElementWeaponCausation, Support: models.SupportStrong},
			{ID: models.ElementActCausation, Support: models.SupportStrong},
		},
	}
	if got := findRoute(t, Evaluate(plain), models.RouteWeaponUncertaintyCausation); got.Status != models.RouteRisky {
		t.Errorf("weapon route on strong support = %s, want risky", got.Status)
	}
	if got := findRoute(t, Evaluate(plain), models.RouteActDenial); got.Status != models.RouteRisky {
		t.Errorf("act denial on strong support = %s, want risky", got.Status)
	}

	weakAct := Context{Elements: []models.ElementState{{ID: models.ElementActCausation, Support: models.SupportNone}}}
	if got := findRoute(t, Evaluate(weakAct), models.RouteActDenial); got.Status != models.RouteViable {
		t.Errorf("act denial on no support = %s, want viable", got.Status)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	ctx := Context{
		Charge:           models.Charge{Offence: "s18", SpecificIntent: true},
		ProceduralStatus: models.ProceduralConditionallyUnsafe,
		Dependencies: []models.Dependency{
			{ID: "bwv_officer_1", Status: models.DependencyOutstanding},
			{ID: "cad_log", Status: models.DependencyOutstanding},
		},
		Text: "brief glimpse in poor lighting, possibly a bottle",
	}
	first := Evaluate(ctx)
	second := Evaluate(ctx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Evaluate is not deterministic:\n%s", diff)
	}
}

func TestBuildAttackPaths_SkipsBlockedRoutes(t *testing.T) {
	assessments := Evaluate(Context{}) // self defence blocked, others open
	paths := BuildAttackPaths(assessments)

	for _, path := range paths {
		if path.Route == models.RouteSelfDefence {
			t.Errorf("blocked route %s produced attack path %s", path.Route, path.ID)
		}
		if len(path.EvidenceInputs) == 0 {
			t.Errorf("path %s declares no evidence inputs", path.ID)
		}
	}
}
