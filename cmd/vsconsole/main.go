// vsconsole is a small terminal front end for the console API: listing and
// inspecting work orders and driving their lifecycle without the web UI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	consolesdk "github.com/itaas-cloud/vsphere-console-sdk"
	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/logger"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/config"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/lifecycle"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/payloads"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/services/library"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/view"
)

var configFile string

// terminalNotifier routes the action notifications the view controllers
// emit to the terminal.
type terminalNotifier struct{}

func (terminalNotifier) Success(message string) { fmt.Println(message) }
func (terminalNotifier) Error(message string)   { fmt.Fprintln(os.Stderr, "error:", message) }

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.FromFile(configFile)
	}
	return config.New()
}

func newClient() (library.Library, *logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := consolesdk.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Development, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	return client, log, nil
}

func main() {
	root := &cobra.Command{
		Use:           "vsconsole",
		Short:         "Work-order console for the vSphere provisioning API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (YAML); environment variables are used when omitted")

	root.AddCommand(workOrderCmd())
	root.AddCommand(vniCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func workOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workorder",
		Short: "Manage VM work orders",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List work orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			orders, err := client.WorkOrder().List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tOS\tCPU\tRAM\tDISK\tSTATUS")
			for _, order := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.0f\t%s\n",
					order.ID, order.Name, order.OS,
					order.CPU, order.RAM, order.Disk,
					order.Status.Label())
			}
			return w.Flush()
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "maximum number of orders to return")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a work order with its placement verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}

			loader := view.NewLoader(client.WorkOrder(), client.VNIWorkOrder(), client.Inventory(), log)
			edit, err := loader.LoadWorkOrderEdit(cmd.Context(), payloads.ID(args[0]))
			if view.IsNotFound(err) {
				return fmt.Errorf("work order %s not found", args[0])
			}
			if err != nil {
				return err
			}

			order := edit.Order
			fmt.Printf("Name:    %s\n", order.Name)
			fmt.Printf("OS:      %s\n", order.OS)
			fmt.Printf("CPU/RAM: %d vCPU / %d GB\n", order.CPU, order.RAM)
			fmt.Printf("Disk:    %.0f GB\n", order.Disk)
			fmt.Printf("Status:  %s\n", order.Status.Label())
			if edit.HostSupport != nil {
				fmt.Printf("Host:    %s\n", edit.HostSupport.Message)
			}
			if order.LastExecutionLog != "" {
				fmt.Printf("Log:     %s\n", order.LastExecutionLog)
			}
			return nil
		},
	}

	approve := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}

			order, err := client.WorkOrder().Get(cmd.Context(), payloads.ID(args[0]))
			if err != nil {
				return err
			}

			controller := view.NewWorkOrderController(client.WorkOrder(), terminalNotifier{}, log)
			return controller.Approve(cmd.Context(), order)
		},
	}

	execute := &cobra.Command{
		Use:   "execute <id>",
		Short: "Dispatch provisioning for an approved work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}

			order, err := client.WorkOrder().Get(cmd.Context(), payloads.ID(args[0]))
			if err != nil {
				return err
			}

			controller := view.NewWorkOrderController(client.WorkOrder(), terminalNotifier{}, log)
			return controller.Execute(cmd.Context(), order)
		},
	}

	var force bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}

			order, err := client.WorkOrder().Get(cmd.Context(), payloads.ID(args[0]))
			if err != nil {
				return err
			}

			controller := view.NewWorkOrderController(client.WorkOrder(), terminalNotifier{}, log)
			deleted, err := controller.Delete(cmd.Context(), order, func() bool {
				return force || confirm(fmt.Sprintf("Delete work order %s (%s)?", order.ID, order.Name))
			})
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("aborted")
			}
			return nil
		},
	}
	del.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	cmd.AddCommand(list, show, approve, execute, del)
	return cmd
}

func vniCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vni",
		Short: "Manage VNI work orders",
	}

	var limit int
	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List VNI work orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			var filter lifecycle.Status
			if status != "" {
				filter, err = lifecycle.Parse(status)
				if err != nil {
					return err
				}
			}

			orders, err := client.VNIWorkOrder().List(cmd.Context(), limit, filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tVNI\tCIDR\tIPS\tOWNER\tPRIORITY\tSTATUS")
			for _, order := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					order.ID, order.VNIName, order.CIDR, order.NumberOfIPs,
					order.Owner, order.Priority, order.Status.Label())
			}
			return w.Flush()
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "maximum number of orders to return")
	list.Flags().StringVar(&status, "status", "", "filter by status")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a VNI work order with its network verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}

			loader := view.NewLoader(client.WorkOrder(), client.VNIWorkOrder(), client.Inventory(), log)
			edit, err := loader.LoadVNIEdit(cmd.Context(), payloads.ID(args[0]))
			if view.IsNotFound(err) {
				return fmt.Errorf("VNI work order %s not found", args[0])
			}
			if err != nil {
				return err
			}

			order := edit.Order
			fmt.Printf("VNI:      %s\n", order.VNIName)
			fmt.Printf("Project:  %s\n", order.Project)
			fmt.Printf("CIDR:     %s\n", order.CIDR)
			fmt.Printf("Range:    %s - %s (%d IPs)\n", order.FirstIP, order.LastIP, order.NumberOfIPs)
			fmt.Printf("Gateway:  %s\n", order.Gateway)
			fmt.Printf("Status:   %s\n", order.Status.Label())
			if edit.Validation != nil {
				fmt.Printf("Network:  [%s] %s\n", edit.Validation.Severity, edit.Validation.Message)
			}
			if order.LastExecutionLog != "" {
				fmt.Printf("Log:      %s\n", order.LastExecutionLog)
			}
			return nil
		},
	}

	transition := func(use, short string, run func(*view.VNIController, *cobra.Command, *payloads.VNIWorkOrder) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, log, err := newClient()
				if err != nil {
					return err
				}

				order, err := client.VNIWorkOrder().Get(cmd.Context(), payloads.ID(args[0]))
				if err != nil {
					return err
				}

				controller := view.NewVNIController(client.VNIWorkOrder(), terminalNotifier{}, log)
				return run(controller, cmd, order)
			},
		}
	}

	approve := transition("approve", "Approve a pending VNI work order",
		func(c *view.VNIController, cmd *cobra.Command, order *payloads.VNIWorkOrder) error {
			return c.Approve(cmd.Context(), order)
		})
	reject := transition("reject", "Reject a pending VNI work order",
		func(c *view.VNIController, cmd *cobra.Command, order *payloads.VNIWorkOrder) error {
			return c.Reject(cmd.Context(), order)
		})
	execute := transition("execute", "Dispatch provisioning for an approved VNI work order",
		func(c *view.VNIController, cmd *cobra.Command, order *payloads.VNIWorkOrder) error {
			return c.Execute(cmd.Context(), order)
		})

	var output string
	export := &cobra.Command{
		Use:   "export <id>",
		Short: "Download the spreadsheet export of a VNI work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			data, filename, err := client.VNIWorkOrder().ExportExcel(cmd.Context(), payloads.ID(args[0]))
			if err != nil {
				return err
			}

			target := output
			if target == "" {
				target = filename
			}
			if target == "" {
				target = fmt.Sprintf("vni_workorder_%s.xlsx", args[0])
			}

			if err := os.WriteFile(target, data, 0o644); err != nil {
				return err
			}

			fmt.Printf("wrote %s (%d bytes)\n", target, len(data))
			return nil
		},
	}
	export.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the server-suggested name)")

	cmd.AddCommand(list, show, approve, reject, execute, export)
	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}
