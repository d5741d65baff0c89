package form

// stubPage is a minimal page whose behaviour is supplied by closures.
type stubPage struct {
	body Body
	app  *Application
	spec stubSpec
}

type stubSpec struct {
	errors   func(Body) map[string]string
	next     func(Body, *Application) string
	previous func(Body, *Application) string
	response func(Body) (Response, error)
}

func (p *stubPage) Body() Body { return p.body }

func (p *stubPage) Errors() map[string]string {
	if p.spec.errors == nil {
		return nil
	}
	return p.spec.errors(p.body)
}

func (p *stubPage) Next() string {
	if p.spec.next == nil {
		return ""
	}
	return p.spec.next(p.body, p.app)
}

func (p *stubPage) Previous() string {
	if p.spec.previous == nil {
		return ""
	}
	return p.spec.previous(p.body, p.app)
}

func (p *stubPage) Response() (Response, error) {
	if p.spec.response == nil {
		var r Response
		for k, v := range p.body {
			r.Set(k, v)
		}
		return r, nil
	}
	return p.spec.response(p.body)
}

func stubFactory(spec stubSpec) PageFactory {
	return func(body Body, app *Application) (Page, error) {
		return &stubPage{body: body, app: app, spec: spec}, nil
	}
}

func requireFields(fields ...string) func(Body) map[string]string {
	return func(b Body) map[string]string {
		errs := map[string]string{}
		for _, f := range fields {
			if b.String(f) == "" {
				errs[f] = "Enter " + f
			}
		}
		return errs
	}
}

// testRegistry builds a small form:
//
//	some-task:          some-page -> other-page
//	accommodation:      previous-stays -(yes)-> previous-stays-details
//	check-your-answers: review
func testRegistry() *Registry {
	reg, err := Build(
		SectionSpec{
			Title: "Details",
			Tasks: []TaskSpec{
				{
					ID:    "some-task",
					Title: "Some task",
					Pages: []PageSpec{
						{
							ID:     "some-page",
							Title:  "Some page",
							Fields: []string{"foo"},
							New: stubFactory(stubSpec{
								errors: requireFields("foo"),
								next:   func(Body, *Application) string { return "other-page" },
							}),
						},
						{
							ID:     "other-page",
							Title:  "Other page",
							Fields: []string{"q"},
							New: stubFactory(stubSpec{
								errors:   requireFields("q"),
								previous: func(Body, *Application) string { return "some-page" },
							}),
						},
					},
				},
				{
					ID:    "accommodation",
					Title: "Accommodation",
					Pages: []PageSpec{
						{
							ID:     "previous-stays",
							Fields: []string{"previousStays"},
							New: stubFactory(stubSpec{
								errors: requireFields("previousStays"),
								next: func(b Body, _ *Application) string {
									if b.String("previousStays") == "yes" {
										return "previous-stays-details"
									}
									return ""
								},
							}),
						},
						{
							ID:     "previous-stays-details",
							Fields: []string{"details"},
							New: stubFactory(stubSpec{
								errors:   requireFields("details"),
								previous: func(Body, *Application) string { return "previous-stays" },
							}),
						},
					},
				},
			},
		},
		SectionSpec{
			Title: "Check your answers",
			Tasks: []TaskSpec{{
				ID:    ReviewTaskID,
				Title: "Check your answers",
				Pages: []PageSpec{{
					ID:     ReviewPageID,
					Fields: []string{"reviewed"},
					New:    stubFactory(stubSpec{errors: requireFields("reviewed")}),
				}},
			}},
		},
	)
	if err != nil {
		panic(err)
	}
	return reg
}

func mustPage(reg *Registry, taskID, pageID string) PageDefinition {
	def, err := reg.Page(taskID, pageID)
	if err != nil {
		panic(err)
	}
	return def
}
