/*
Package dsl provides a fluent builder for declaring voie state trees in Go.

It is the code-first counterpart of the file loader: the same tree can be
described in YAML or built here with type checking and closures for hooks.

Example usage:

	b := dsl.New()

	b.Add("app").Path("/").Redirect("users").
		Add("users").Parent("app").Path("users").Redirect("users.list").
		Add("users.list").Path("list").Param("page", 1).
		Add("users.show").Path(":id").
		OnEnter(func(ctx context.Context, c *domain.Context) (domain.Result, error) {
			c.Data["user"] = lookupUser(c.Params["id"])
			return domain.Result{}, nil
		})

	loader, err := b.Build()
	if err != nil {
		return err
	}
	return engine.Load(ctx, loader)
*/
package dsl
