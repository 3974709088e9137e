package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"inmomarket/internal/client/visits"
	"inmomarket/internal/domain/entity"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagPage    int
	flagSize    int
	flagMessage string
)

func newVisitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visits",
		Short: "List visit requests",
	}

	requested := &cobra.Command{
		Use:   "requested",
		Short: "List the visits you requested",
		RunE:  runVisitsRequested,
	}
	received := &cobra.Command{
		Use:   "received",
		Short: "List the visits requested on your publications",
		RunE:  runVisitsReceived,
	}

	for _, sub := range []*cobra.Command{requested, received} {
		sub.Flags().IntVar(&flagPage, "page", 0, "zero-based page number")
		sub.Flags().IntVar(&flagSize, "size", 10, "page size")
		cmd.AddCommand(sub)
	}

	request := &cobra.Command{
		Use:   "request <publication-id> <date> <time>",
		Short: "Request a visit slot on a publication",
		Args:  cobra.ExactArgs(3),
		RunE:  runVisitsRequest,
	}
	request.Flags().StringVar(&flagMessage, "message", "", "optional message for the owner")
	cmd.AddCommand(request)

	return cmd
}

func runVisitsRequested(cmd *cobra.Command, _ []string) error {
	page, err := newVisitClient().MyVisits(cmd.Context(), flagPage, flagSize)
	if err != nil {
		return err
	}

	return printVisitPage(page)
}

func runVisitsReceived(cmd *cobra.Command, _ []string) error {
	page, err := newVisitClient().MyPropertyVisits(cmd.Context(), flagPage, flagSize)
	if err != nil {
		return err
	}

	return printVisitPage(page)
}

func runVisitsRequest(cmd *cobra.Command, args []string) error {
	publicationID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid publication id %q: %w", args[0], err)
	}

	client := newVisitClient()
	store := visits.NewStore(client)

	publication, err := client.GetPublication(cmd.Context(), publicationID)
	if err != nil {
		return err
	}

	visit, err := store.Schedule(cmd.Context(), publication, args[1], args[2], flagMessage)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(visit)
	}

	fmt.Printf("Visit requested: %s at %s %s (%s)\n", visit.PublicationTitle, visit.VisitDate, visit.VisitTime, visit.ID)

	return nil
}

func newAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <visit-id> <meeting-location>",
		Short: "Accept a pending visit request",
		Args:  cobra.ExactArgs(2),
		RunE:  runAccept,
	}
	cmd.Flags().StringVar(&flagMessage, "message", "", "optional additional message for the visitor")

	return cmd
}

func runAccept(cmd *cobra.Command, args []string) error {
	visitID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid visit id %q: %w", args[0], err)
	}

	visit, err := newVisitClient().Accept(cmd.Context(), visitID, args[1], flagMessage)
	if err != nil {
		return err
	}

	return printVisit(visit, "accepted")
}

func newRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <visit-id> <reason>",
		Short: "Reject a pending visit request",
		Args:  cobra.ExactArgs(2),
		RunE:  runReject,
	}
}

func runReject(cmd *cobra.Command, args []string) error {
	visitID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid visit id %q: %w", args[0], err)
	}

	visit, err := newVisitClient().Reject(cmd.Context(), visitID, args[1])
	if err != nil {
		return err
	}

	return printVisit(visit, "rejected")
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <visit-id>",
		Short: "Withdraw a pending visit request",
		Args:  cobra.ExactArgs(1),
		RunE:  runCancel,
	}
}

func runCancel(cmd *cobra.Command, args []string) error {
	visitID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid visit id %q: %w", args[0], err)
	}

	visit, err := newVisitClient().Cancel(cmd.Context(), visitID)
	if err != nil {
		return err
	}

	return printVisit(visit, "cancelled")
}

func newNotificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show the visit notification inbox",
		RunE:  runNotifications,
	}
}

func runNotifications(cmd *cobra.Command, _ []string) error {
	notifications, err := newVisitClient().Notifications(cmd.Context())
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(notifications)
	}

	fmt.Printf("New visit requests: %d\n", notifications.NewVisitRequests)
	fmt.Printf("New visit responses: %d\n", notifications.NewVisitResponses)

	if len(notifications.PendingVisits) > 0 {
		fmt.Println("\nPending requests on your publications:")
		printNotificationItems(notifications.PendingVisits)
	}
	if len(notifications.RespondedVisits) > 0 {
		fmt.Println("\nResponses to your requests:")
		printNotificationItems(notifications.RespondedVisits)
	}

	return nil
}

func newMarkReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mark-read <request|responses>",
		Short:     "Reset one unread notification counter",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(usecase.NotificationKindRequest), string(usecase.NotificationKindResponses)},
		RunE:      runMarkRead,
	}
}

func runMarkRead(cmd *cobra.Command, args []string) error {
	kind := usecase.NotificationKind(args[0])
	if !kind.IsValid() {
		return fmt.Errorf("unknown notification type %q, expected request or responses", args[0])
	}

	if err := newVisitClient().MarkNotificationsRead(cmd.Context(), kind); err != nil {
		return err
	}

	fmt.Printf("Marked %s notifications as read\n", kind)

	return nil
}

func printVisit(visit *entity.VisitRequest, action string) error {
	if isJSON() {
		return printJSON(visit)
	}

	fmt.Printf("Visit %s: %s at %s %s (%s)\n", action, visit.PublicationTitle, visit.VisitDate, visit.VisitTime, visit.Status)

	return nil
}

func printVisitPage(page *usecase.Page[*entity.VisitRequest]) error {
	if isJSON() {
		return printJSON(page)
	}

	if len(page.Content) == 0 {
		fmt.Println("No visit requests found.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPUBLICATION\tDATE\tTIME\tSTATUS")
	for _, visit := range page.Content {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			visit.ID, visit.PublicationTitle, visit.VisitDate, visit.VisitTime, visit.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPage %d of %d (%d total)\n", page.Number+1, page.TotalPages, page.TotalElements)

	return nil
}

func printNotificationItems(items []*usecase.VisitNotificationItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPUBLICATION\tDATE\tSTATUS\tNEW")
	for _, item := range items {
		marker := ""
		if item.IsNewRequest || item.HasNewResponse {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.PublicationTitle, item.VisitDate, item.Status, marker)
	}
	_ = w.Flush()
}
