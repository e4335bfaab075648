// Package project generates a new static site skeleton.
//
// A run collects the app name into a Context, then the Scaffolder works
// through a Plan in three stages (directories, static copies, rendered
// templates) before the Pipeline hands the project root to an Installer.
//
// Basic usage:
//
//	s := project.NewScaffolder(assets.FS(), project.DefaultPlan())
//	err := s.Scaffold(ctx, root, project.NewContext("MySite"), project.ScaffoldOptions{})
package project
