// Package platform smooths over permission differences between operating
// systems for the files hugopost runs, such as the deploy script.
package platform
