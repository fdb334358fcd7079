package main

// Run executes the featured command.
func (c *FeaturedCmd) Run(deps *Dependencies) error {
	repos, err := deps.Client.FeaturedRepos(deps.Ctx)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	return encode(deps.Stdout, deps.Format, repos)
}
