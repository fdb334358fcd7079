package main

// Run executes the repo command.
func (c *RepoCmd) Run(deps *Dependencies) error {
	doc, err := deps.Client.RepoDocumentation(deps.Ctx, c.owner, c.repo)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	return encode(deps.Stdout, deps.Format, doc)
}
