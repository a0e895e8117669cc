package model

import "time"

// ContactMessage is a message submitted through the public contact form.
// Messages are write-once; admins read them, nobody edits them.
type ContactMessage struct {
    ID        uint64    // contact_messages.id
    Name      string    // contact_messages.name
    Email     string    // contact_messages.email
    Subject   string    // contact_messages.subject
    Body      string    // contact_messages.body
    CreatedAt time.Time // contact_messages.created_at
}
