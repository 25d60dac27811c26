package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierca1/leadmail/internal/infra/mail"
	"github.com/xavierca1/leadmail/internal/usecase"
)

var smtpInput usecase.TestSmtpInput

var smtpCmd = &cobra.Command{
	Use:   "smtp",
	Short: "SMTP utilities",
}

var smtpVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Send a test message to the from address",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := usecase.NewTestSmtpUseCase(mail.NewSMTPSender())

		out, err := uc.Execute(cmd.Context(), smtpInput)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out.Message)
		return nil
	},
}

func init() {
	f := smtpVerifyCmd.Flags()
	f.StringVar(&smtpInput.Host, "host", "", "SMTP host")
	f.IntVar(&smtpInput.Port, "port", 587, "SMTP port (465 uses implicit TLS)")
	f.StringVar(&smtpInput.Username, "username", "", "SMTP username")
	f.StringVar(&smtpInput.Password, "password", "", "SMTP password")
	f.StringVar(&smtpInput.FromEmail, "from", "", "from address, also the test recipient")
	f.StringVar(&smtpInput.FromName, "from-name", "", "display name")

	smtpVerifyCmd.MarkFlagRequired("host")
	smtpVerifyCmd.MarkFlagRequired("from")

	smtpCmd.AddCommand(smtpVerifyCmd)
}
