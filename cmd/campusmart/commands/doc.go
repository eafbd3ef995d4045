// Package commands defines the campusmart CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login, logout, whoami   Manage the session user
//   - onboarding              Show or complete onboarding
//   - users                   List, upsert and delete accounts
//   - businesses              List, add, update and delete businesses
//   - products                List, add, update and delete products
//   - cart                    Show and edit the session cart
//   - checkout                Turn the cart into orders
//   - orders                  List, add, re-status and delete orders
//   - reports                 List, file, re-status and delete reports
//   - notifications           Read and manage an inbox
//
// # Implementation
//
// The root command loads Config from the environment, applies flag overrides
// and builds the backend, port and store before any subcommand runs. The
// store is closed after the subcommand returns.
package commands
