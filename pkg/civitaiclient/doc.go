// Package civitaiclient wires configuration and transport into a ready
// civitai.Client.
//
// The zero config targets the public platform:
//
//	cli, err := civitaiclient.New(&civitai.Config{})
//
// Set APIKey for authenticated access, and Retry*/Debug/Logger to tune the
// transport. See the civitai package for the query builders and result
// handling the returned client exposes.
package civitaiclient
